package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/domain/entity"
	"myshop/internal/usecase"
	"myshop/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req tokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.IssueToken(c.Request().Context(), entity.Identity{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tokenResponse{Token: token})
}

package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/usecase"
	"myshop/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type createUserRequest struct {
	Email  string `json:"email" validate:"required"`
	Name   string `json:"name"`
	Photo  string `json:"photo"`
	Role   string `json:"role" validate:"omitempty,oneof=buyer seller admin"`
	Status string `json:"status" validate:"omitempty,oneof=pending active rejected"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active rejected"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.userUseCase.Create(c.Request().Context(), usecase.CreateUserInput{
		Email:  req.Email,
		Name:   req.Name,
		Photo:  req.Photo,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) ListUsersByRole(c echo.Context) error {
	users, err := h.userUseCase.ListByRole(c.Request().Context(), c.Param("role"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) ListUsersByStatus(c echo.Context) error {
	users, err := h.userUseCase.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) UpdateSellerStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.userUseCase.UpdateSellerStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

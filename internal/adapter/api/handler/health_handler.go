package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/usecase"
	"myshop/pkg/response"
)

type HealthHandler struct {
	healthUseCase *usecase.HealthUseCase
}

func NewHealthHandler(healthUseCase *usecase.HealthUseCase) *HealthHandler {
	return &HealthHandler{
		healthUseCase: healthUseCase,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return response.Text(c, "E-commerce website running")
}

func (h *HealthHandler) CheckStoreHealth(c echo.Context) error {
	if err := h.healthUseCase.CheckStore(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "ok"})
}

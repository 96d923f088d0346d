package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/usecase"
	"myshop/pkg/errors"
	"myshop/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
	strictNotFound  bool
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase, strictNotFound bool) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		strictNotFound:  strictNotFound,
	}
}

type categoryRequest struct {
	Category string `json:"category" validate:"required"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.categoryUseCase.Create(c.Request().Context(), req.Category)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if category == nil {
		if h.strictNotFound {
			return response.Error(c, errors.NotFound("Category", nil))
		}
		return response.Success(c, nil)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) RenameCategory(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.categoryUseCase.Rename(c.Request().Context(), c.Param("id"), req.Category)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	result, err := h.categoryUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/domain/entity"
	"myshop/internal/usecase"
	"myshop/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addCartItemRequest struct {
	ProductID   string   `json:"productId" validate:"required"`
	Email       string   `json:"email" validate:"required"`
	Count       *int     `json:"count" validate:"omitempty,min=1"`
	ProductName string   `json:"product_name"`
	Brand       string   `json:"brand"`
	Price       *float64 `json:"price"`
	Discount    *float64 `json:"discount"`
	Image       string   `json:"image"`
}

type updateCountRequest struct {
	Count *int `json:"count" validate:"required,min=1"`
}

// ownerQuery selects the items of one buyer.
type ownerQuery struct {
	Email string `query:"email" validate:"required"`
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item := &entity.CartItem{
		ProductID:   req.ProductID,
		Email:       req.Email,
		Count:       1,
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Price:       req.Price,
		Discount:    req.Discount,
		Image:       req.Image,
	}
	if req.Count != nil {
		item.Count = *req.Count
	}

	result, err := h.cartUseCase.AddItem(c.Request().Context(), item)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *CartHandler) ListItems(c echo.Context) error {
	items, err := h.cartUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *CartHandler) ListOwnerItems(c echo.Context) error {
	var q ownerQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.Error(c, err)
	}

	items, err := h.cartUseCase.ListByEmail(c.Request().Context(), q.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	result, err := h.cartUseCase.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *CartHandler) UpdateCount(c echo.Context) error {
	var req updateCountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.cartUseCase.UpdateCount(c.Request().Context(), c.Param("id"), *req.Count)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

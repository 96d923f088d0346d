package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/domain/entity"
	"myshop/internal/usecase"
	"myshop/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type addWishlistItemRequest struct {
	ProductID   string   `json:"productId" validate:"required"`
	Email       string   `json:"email" validate:"required"`
	ProductName string   `json:"product_name"`
	Brand       string   `json:"brand"`
	Price       *float64 `json:"price"`
	Discount    *float64 `json:"discount"`
	Image       string   `json:"image"`
}

func (h *WishlistHandler) AddItem(c echo.Context) error {
	var req addWishlistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.wishlistUseCase.AddItem(c.Request().Context(), &entity.WishlistItem{
		ProductID:   req.ProductID,
		Email:       req.Email,
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Price:       req.Price,
		Discount:    req.Discount,
		Image:       req.Image,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *WishlistHandler) ListItems(c echo.Context) error {
	items, err := h.wishlistUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *WishlistHandler) ListOwnerItems(c echo.Context) error {
	var q ownerQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.Error(c, err)
	}

	items, err := h.wishlistUseCase.ListByEmail(c.Request().Context(), q.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	result, err := h.wishlistUseCase.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

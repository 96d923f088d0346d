package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/domain/entity"
	"myshop/internal/usecase"
	"myshop/pkg/errors"
	"myshop/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	strictNotFound bool
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, strictNotFound bool) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		strictNotFound: strictNotFound,
	}
}

type createProductRequest struct {
	ProductName      string   `json:"product_name" validate:"required"`
	Brand            string   `json:"brand"`
	Category         string   `json:"category"`
	Stock            *int     `json:"stock"`
	Price            *float64 `json:"price"`
	Discount         *float64 `json:"discount"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Email            string   `json:"email" validate:"required"`
	Images           []string `json:"images"`
}

// updateProductRequest mirrors the editable field set. Any field left out of
// the body is cleared on the stored product.
type updateProductRequest struct {
	ProductName      *string  `json:"product_name"`
	Brand            *string  `json:"brand"`
	Category         *string  `json:"category"`
	Stock            *int     `json:"stock"`
	Price            *float64 `json:"price"`
	Discount         *float64 `json:"discount"`
	ShortDescription *string  `json:"short_description"`
	Description      *string  `json:"description"`
}

type updateDiscountRequest struct {
	Discount *float64 `json:"discount" validate:"required"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.Create(c.Request().Context(), &entity.Product{
		ProductName:      req.ProductName,
		Brand:            req.Brand,
		Category:         req.Category,
		Stock:            req.Stock,
		Price:            req.Price,
		Discount:         req.Discount,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Email:            req.Email,
		Images:           req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if product == nil {
		if h.strictNotFound {
			return response.Error(c, errors.NotFound("Product", nil))
		}
		return response.Success(c, nil)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) ListProductsBySeller(c echo.Context) error {
	products, err := h.productUseCase.ListBySeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	result, err := h.productUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.Update(c.Request().Context(), c.Param("id"), entity.ProductUpdate{
		ProductName:      req.ProductName,
		Brand:            req.Brand,
		Category:         req.Category,
		Stock:            req.Stock,
		Price:            req.Price,
		Discount:         req.Discount,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ProductHandler) UpdateDiscount(c echo.Context) error {
	var req updateDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.UpdateDiscount(c.Request().Context(), c.Param("id"), *req.Discount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

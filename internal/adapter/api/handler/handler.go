package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/usecase"
	"myshop/pkg/errors"
)

// UseCases groups the application services the HTTP layer calls into.
type UseCases struct {
	Auth     *usecase.AuthUseCase
	User     *usecase.UserUseCase
	Product  *usecase.ProductUseCase
	Cart     *usecase.CartUseCase
	Wishlist *usecase.WishlistUseCase
	Category *usecase.CategoryUseCase
	Banner   *usecase.BannerUseCase
	Health   *usecase.HealthUseCase
}

type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Category *CategoryHandler
	Banner   *BannerHandler
	Health   *HealthHandler
}

// NewHandlers builds every handler. With strictNotFound set, single-document
// reads of a missing ID answer 404 instead of a null body.
func NewHandlers(uc UseCases, strictNotFound bool) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(uc.Auth),
		User:     NewUserHandler(uc.User),
		Product:  NewProductHandler(uc.Product, strictNotFound),
		Cart:     NewCartHandler(uc.Cart),
		Wishlist: NewWishlistHandler(uc.Wishlist),
		Category: NewCategoryHandler(uc.Category, strictNotFound),
		Banner:   NewBannerHandler(uc.Banner),
		Health:   NewHealthHandler(uc.Health),
	}
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	return c.Validate(req)
}

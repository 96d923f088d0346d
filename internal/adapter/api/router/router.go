package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
	"myshop/internal/adapter/api/middleware"
	"myshop/internal/domain/entity"
)

// Guards holds the middleware chains placed in front of protected routes.
// Empty chains leave the routes open.
type Guards struct {
	Seller []echo.MiddlewareFunc
	Admin  []echo.MiddlewareFunc
	Member []echo.MiddlewareFunc
}

// NewGuards returns open guards unless requireAuth is set, in which case every
// guarded route needs a bearer token with a fitting role.
func NewGuards(requireAuth bool, authMiddleware *middleware.AuthMiddleware) Guards {
	if !requireAuth {
		return Guards{}
	}
	return Guards{
		Seller: []echo.MiddlewareFunc{authMiddleware.Authenticate, middleware.RequireRole(entity.RoleSeller, entity.RoleAdmin)},
		Admin:  []echo.MiddlewareFunc{authMiddleware.Authenticate, middleware.RequireRole(entity.RoleAdmin)},
		Member: []echo.MiddlewareFunc{authMiddleware.Authenticate},
	}
}

func Setup(e *echo.Echo, h *handler.Handlers, guards Guards) {
	SetupAuthRouter(e, h.Auth)
	SetupUserRouter(e, h.User, guards)
	SetupProductRouter(e, h.Product, guards)
	SetupCartRouter(e, h.Cart, guards)
	SetupWishlistRouter(e, h.Wishlist, guards)
	SetupCategoryRouter(e, h.Category, guards)
	SetupBannerRouter(e, h.Banner, guards)
	SetupHealthRouter(e, h.Health)
}

package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
)

func SetupWishlistRouter(e *echo.Echo, wishlistHandler *handler.WishlistHandler, guards Guards) {
	wishlists := e.Group("/wishlists", guards.Member...)
	wishlists.POST("", wishlistHandler.AddItem)
	wishlists.GET("", wishlistHandler.ListItems)
	wishlists.GET("/items", wishlistHandler.ListOwnerItems)
	wishlists.DELETE("/items/:id", wishlistHandler.RemoveItem)
}

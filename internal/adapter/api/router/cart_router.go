package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
)

func SetupCartRouter(e *echo.Echo, cartHandler *handler.CartHandler, guards Guards) {
	carts := e.Group("/carts", guards.Member...)
	carts.POST("", cartHandler.AddItem)
	carts.GET("", cartHandler.ListItems)
	carts.GET("/items", cartHandler.ListOwnerItems)
	carts.DELETE("/items/:id", cartHandler.RemoveItem)
	carts.PUT("/:id", cartHandler.UpdateCount)
}

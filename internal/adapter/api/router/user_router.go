package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, guards Guards) {
	e.POST("/users", userHandler.CreateUser)
	e.GET("/users", userHandler.ListUsers, guards.Admin...)
	e.GET("/users/:role", userHandler.ListUsersByRole, guards.Admin...)

	e.GET("/sellers/pending/:status", userHandler.ListUsersByStatus, guards.Admin...)
	e.PUT("/seller/status/:id", userHandler.UpdateSellerStatus, guards.Admin...)
}

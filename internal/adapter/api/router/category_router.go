package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
)

func SetupCategoryRouter(e *echo.Echo, categoryHandler *handler.CategoryHandler, guards Guards) {
	categories := e.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory, guards.Admin...)
	categories.PUT("/update/:id", categoryHandler.RenameCategory, guards.Admin...)
	categories.DELETE("/delete/:id", categoryHandler.DeleteCategory, guards.Admin...)

	e.GET("/category/single/:id", categoryHandler.GetCategory)
}

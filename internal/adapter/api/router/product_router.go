package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler, guards Guards) {
	products := e.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.POST("", productHandler.CreateProduct, guards.Seller...)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/details/:id", productHandler.GetProduct)
	products.GET("/seller/:email", productHandler.ListProductsBySeller)

	product := e.Group("/product", guards.Seller...)
	product.DELETE("/delete/:id", productHandler.DeleteProduct)
	product.PATCH("/update/:id", productHandler.UpdateProduct)
	product.PATCH("/discount/update/:id", productHandler.UpdateDiscount)
}

package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
)

func SetupBannerRouter(e *echo.Echo, bannerHandler *handler.BannerHandler, guards Guards) {
	e.GET("/banners", bannerHandler.ListBanners)
	e.POST("/banners", bannerHandler.CreateBanner, guards.Admin...)
}

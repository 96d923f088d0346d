package router

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler) {
	e.POST("/jwt", authHandler.IssueToken)
}

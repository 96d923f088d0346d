package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"myshop/internal/adapter/api/handler"
	apimiddleware "myshop/internal/adapter/api/middleware"
	"myshop/internal/adapter/api/router"
	"myshop/pkg/response"
)

type ServerOptions struct {
	CORSOrigins []string
	// StoreTimeout bounds every request context; zero leaves requests unbounded.
	StoreTimeout time.Duration
	RequireAuth  bool
}

// NewServer assembles the echo instance: middleware stack, error handling and
// every route.
func NewServer(h *handler.Handlers, authMiddleware *apimiddleware.AuthMiddleware, opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
		},
	}))
	if opts.StoreTimeout > 0 {
		e.Use(middleware.ContextTimeout(opts.StoreTimeout))
	}
	e.Use(authMiddleware.OptionalAuth)

	router.Setup(e, h, router.NewGuards(opts.RequireAuth, authMiddleware))

	return e
}

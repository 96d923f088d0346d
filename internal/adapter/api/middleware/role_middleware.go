package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole admits only requests whose verified session carries one of
// roles. It must run after Authenticate or OptionalAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, msgForbidden)
			}
			if _, ok := allowed[session.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, msgForbidden)
			}
			return next(c)
		}
	}
}

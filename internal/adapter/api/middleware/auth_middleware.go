package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"myshop/internal/domain/entity"
	"myshop/pkg/logger"
)

const sessionKey = "session"

const msgForbidden = "forbidden access"

type TokenVerifier interface {
	Authenticate(token string) (*entity.Session, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return echo.NewHTTPError(http.StatusForbidden, msgForbidden)
		}

		session, err := m.verifier.Authenticate(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, msgForbidden)
		}

		c.Set(sessionKey, session)
		return next(c)
	}
}

// OptionalAuth attaches the session of a valid bearer token and lets every
// request through.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			session, err := m.verifier.Authenticate(token)
			if err != nil {
				logger.Debug("ignoring bearer token on %s %s: %v", c.Request().Method, c.Path(), err)
			} else {
				c.Set(sessionKey, session)
			}
		}
		return next(c)
	}
}

// SessionFrom returns the session attached by Authenticate or OptionalAuth.
func SessionFrom(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(sessionKey).(*entity.Session)
	return session, ok && session != nil
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myshop/internal/domain/entity"
	"myshop/pkg/logger"
)

type fakeVerifier map[string]*entity.Session

func (f fakeVerifier) Authenticate(token string) (*entity.Session, error) {
	if s, ok := f[token]; ok {
		return s, nil
	}
	return nil, errors.New("invalid")
}

var verifier = fakeVerifier{
	"admin-token": {Email: "root@x.com", Role: entity.RoleAdmin},
	"buyer-token": {Email: "b@x.com", Role: entity.RoleBuyer},
}

func ok(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func run(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	return c, mw(ok)(c)
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusForbidden, he.Code)
	assert.Equal(t, "forbidden access", he.Message)
}

func TestAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(verifier)

	for _, header := range []string{"", "admin-token", "Basic admin-token", "Bearer ", "Bearer nope"} {
		_, err := run(t, m.Authenticate, header)
		assertForbidden(t, err)
	}

	c, err := run(t, m.Authenticate, "Bearer admin-token")
	require.NoError(t, err)
	session, found := SessionFrom(c)
	require.True(t, found)
	assert.Equal(t, "root@x.com", session.Email)
}

func TestOptionalAuth(t *testing.T) {
	m := NewAuthMiddleware(verifier)

	var logs bytes.Buffer
	logger.SetOutput(&logs)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })
	t.Setenv("ENVIRONMENT", "development")

	c, err := run(t, m.OptionalAuth, "Bearer nope")
	require.NoError(t, err)
	_, found := SessionFrom(c)
	assert.False(t, found)
	assert.Contains(t, logs.String(), "ignoring bearer token")

	c, err = run(t, m.OptionalAuth, "Bearer buyer-token")
	require.NoError(t, err)
	session, found := SessionFrom(c)
	require.True(t, found)
	assert.Equal(t, entity.RoleBuyer, session.Role)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(verifier)
	adminOnly := func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.OptionalAuth(RequireRole(entity.RoleAdmin)(next))
	}

	_, err := run(t, adminOnly, "")
	assertForbidden(t, err)

	_, err = run(t, adminOnly, "Bearer buyer-token")
	assertForbidden(t, err)

	_, err = run(t, adminOnly, "Bearer admin-token")
	assert.NoError(t, err)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"markd/internal/domain/service"
	mockSvc "markd/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func claimsForUser(userID int64, email string) *service.Claims {
	return &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
}

func TestAuthMiddleware_ValidTokenReachesHandler(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.On("Validate", "valid.token").Return(claimsForUser(42, "alice@example.com"), nil)

	m := NewAuthMiddleware(tokenService)
	c, rec := newAuthTestContext(t, "Bearer valid.token")

	called := false
	handler := m.Authenticate(func(c echo.Context) error {
		called = true
		assert.Equal(t, int64(42), c.Get(UserIDKey))
		assert.Equal(t, "alice@example.com", c.Get(UserEmailKey))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)

	m := NewAuthMiddleware(tokenService)
	c, rec := newAuthTestContext(t, "")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without a token")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenService.AssertNotCalled(t, "Validate")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, header := range []string{"valid.token", "Basic dXNlcjpwYXNz", "Bearer "} {
		tokenService := mockSvc.NewMockTokenService(t)

		m := NewAuthMiddleware(tokenService)
		c, rec := newAuthTestContext(t, header)

		handler := m.Authenticate(func(c echo.Context) error {
			t.Fatalf("handler must not run for header %q", header)

			return nil
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidOrExpiredToken(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.On("Validate", "expired.token").Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenService)
	c, rec := newAuthTestContext(t, "Bearer expired.token")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run with an expired token")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NonNumericSubject(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.On("Validate", "odd.token").Return(&service.Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "not-a-number",
		},
	}, nil)

	m := NewAuthMiddleware(tokenService)
	c, rec := newAuthTestContext(t, "Bearer odd.token")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run with an unusable subject claim")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

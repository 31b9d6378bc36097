package middleware

import (
	"strings"

	deliverycontext "markd/internal/delivery/context"
	"markd/internal/delivery/http/response"
	"markd/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware for downstream handlers.
const (
	// UserIDKey holds the authenticated user's id as int64.
	UserIDKey = "userID"
	// UserEmailKey holds the authenticated user's email.
	UserEmailKey = "userEmail"
)

// AuthMiddleware guards routes with bearer token verification. Requests
// without a valid, unexpired access token never reach the handler.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate is the core middleware function that validates the bearer
// access token and stores the caller's identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := extractBearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "缺少存取權杖")
		}

		claims, err := m.tokenService.Validate(token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "存取權杖無效或已過期")
		}

		userID, err := claims.UserID()
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "存取權杖無效或已過期")
		}

		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, claims.Email)

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)
		if logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("userID", userID))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// extractBearerToken pulls the token out of "Authorization: Bearer <token>".
func extractBearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}

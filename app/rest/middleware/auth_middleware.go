package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"audiooasis-api/app/port"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies session tokens carried in the Authorization
// header and exposes the claims through the request context.
type AuthMiddleware struct {
	tokens port.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens port.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth rejects requests without a valid session token
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			claims, err := m.tokens.Verify(token)
			if err != nil {
				m.logger.Debug("session token rejected", "error", err, "path", c.Request().URL.Path)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			c.Set("user_id", claims.ID)
			c.Set("user_email", claims.Email)
			c.Set("user_name", claims.Username)

			return next(c)
		}
	}
}

// OptionalAuth attaches claims when a valid token is present and lets
// the request through anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractToken(c)
			if token == "" {
				return next(c)
			}

			claims, err := m.tokens.Verify(token)
			if err != nil {
				m.logger.Debug("optional auth failed", "error", err)
				return next(c)
			}

			c.Set("user_id", claims.ID)
			c.Set("user_email", claims.Email)
			c.Set("user_name", claims.Username)

			return next(c)
		}
	}
}

// extractToken pulls the bearer token from the Authorization header.
// Any other scheme is treated as anonymous.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(auth, bearerPrefix)
}

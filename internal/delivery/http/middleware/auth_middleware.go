package middleware

import (
	"log/slog"
	"strings"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests from the session cookie or a Bearer header.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, cookieName: cfg.Auth.CookieName}
}

// Authenticate resolves the current user and stores it on the echo context.
// Failures propagate to the HTTP error handler, which maps them to 401/404.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := m.authUC.ResolveCurrentUser(ctx, m.extractToken(c))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetCurrentUser(c, user)

		if logger, ok := ctx.Value(deliverycontext.KeyLogger).(*slog.Logger); ok && logger != nil {
			scoped := logger.With(slog.String("user_id", user.ID.String()))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, scoped)))
		}

		return next(c)
	}
}

// extractToken prefers the session cookie and falls back to the Authorization header.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

package context

import (
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the echo.Context key holding the authenticated user.
const KeyCurrentUser ContextKey = "current_user"

// SetCurrentUser stores the authenticated user for downstream handlers.
func SetCurrentUser(c echo.Context, user *usecase.UserSummary) {
	c.Set(string(KeyCurrentUser), user)
}

// GetCurrentUser returns the user stored by the auth middleware.
func GetCurrentUser(c echo.Context) (*usecase.UserSummary, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*usecase.UserSummary)

	return user, ok && user != nil
}

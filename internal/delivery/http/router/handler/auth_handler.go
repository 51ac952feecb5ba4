// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/delivery/http/response"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgUserCreated = "Usuario creado exitosamente"
	msgLoggedIn    = "Login exitoso"
	msgLoggedOut   = "Sesión cerrada"
)

// AuthHandler serves registration, login, logout and the current-user endpoint.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.AuthConfig
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg.Auth,
		logger: logger,
	}
}

type registerResponse struct {
	Message  string    `json:"message"`
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

type loginResponse struct {
	Message     string               `json:"message"`
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	User        *usecase.UserSummary `json:"user"`
}

// Register handles POST /auth/create.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		Message:  msgUserCreated,
		ID:       output.ID,
		Email:    output.Email,
		Username: output.Username,
	}, msgUserCreated)
}

// Login handles POST /auth/login and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.AccessToken, output.ExpiresIn))

	return response.Success(c, http.StatusOK, loginResponse{
		Message:     msgLoggedIn,
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		User:        output.User,
	}, msgLoggedIn)
}

// Logout handles POST /auth/logout. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	expired := h.sessionCookie("", 0)
	expired.MaxAge = -1
	expired.Expires = time.Unix(0, 0)
	c.SetCookie(expired)

	return response.Success(c, http.StatusOK, map[string]string{"message": msgLoggedOut}, msgLoggedOut)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("current user missing from context")
	}

	return response.Success(c, http.StatusOK, user, "")
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie(),
		SameSite: http.SameSiteNoneMode,
	}
}

// bindAndValidate decodes the request body into dst and runs its validate tags.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded")
	}
	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

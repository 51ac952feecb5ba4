package handler

import (
	"fmt"
	"net/http"

	"pos/config"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the unauthenticated root and health endpoints.
type HealthHandler struct {
	app config.AppConfig
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{app: cfg.App}
}

// Root handles GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": fmt.Sprintf("Welcome to the %s!", h.app.Name)})
}

// Health handles GET /health.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK", "version": h.app.Version})
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pos/internal/delivery/http/middleware"
	"pos/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Health)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/create", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	categoriesGroup := e.Group("/categories")
	categoriesGroup.Use(r.authMiddleware.Authenticate)
	{
		categoriesGroup.POST("/create", r.categoryHandler.Create)
		categoriesGroup.GET("", r.categoryHandler.List)
		categoriesGroup.GET("/", r.categoryHandler.List)
		categoriesGroup.GET("/:id", r.categoryHandler.Get)
		categoriesGroup.PUT("/:id", r.categoryHandler.Update)
		categoriesGroup.PATCH("/deactivate/:id", r.categoryHandler.Deactivate)
		categoriesGroup.PATCH("/activate/:id", r.categoryHandler.Activate)
	}
}

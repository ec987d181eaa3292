// Package router contains routing setup for the HTTP delivery.
package router

import (
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects the handlers and middleware Fx injects.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	JobHandler     *handler.JobHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	jobHandler     *handler.JobHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		jobHandler:     params.JobHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	jobGroup := e.Group("/jobs")
	jobGroup.Use(r.authMiddleware.Authenticate)
	{
		jobGroup.POST("", r.jobHandler.Create)
		jobGroup.GET("", r.jobHandler.List)
		jobGroup.GET("/:id", r.jobHandler.Get)
		jobGroup.PUT("/:id", r.jobHandler.Update)
		jobGroup.DELETE("/:id", r.jobHandler.Delete)
	}
}

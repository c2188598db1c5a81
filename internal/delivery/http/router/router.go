// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"budie/internal/delivery/http/middleware"
	"budie/internal/delivery/http/router/handler"
	"budie/internal/delivery/ws"
)

// RouterParams holds the handlers and middleware the router wires up,
// injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	TaskHandler   *handler.TaskHandler
	UserHandler   *handler.UserHandler
	SocketHandler *ws.Handler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.RateLimitMiddleware.Global())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Real-time task event channel. Authentication happens inside the
	// handler so the handshake can also carry the token as a query param.
	e.GET("/ws", r.params.SocketHandler.Serve)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register, r.params.RateLimitMiddleware.Auth())
		authGroup.POST("/login", r.params.AuthHandler.Login, r.params.RateLimitMiddleware.Auth())
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, r.params.AuthMiddleware.Authenticate)
		authGroup.GET("/me", r.params.AuthHandler.Me, r.params.AuthMiddleware.Authenticate)
	}

	taskGroup := api.Group("/tasks")
	taskGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		taskGroup.GET("", r.params.TaskHandler.List)
		taskGroup.POST("", r.params.TaskHandler.Create)
		taskGroup.GET("/:id", r.params.TaskHandler.Get)
		taskGroup.PUT("/:id", r.params.TaskHandler.Update)
		taskGroup.DELETE("/:id", r.params.TaskHandler.Delete)
		taskGroup.POST("/:id/complete", r.params.TaskHandler.Complete)
	}

	meGroup := api.Group("/users/me")
	meGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		meGroup.PUT("", r.params.UserHandler.UpdateProfile)
		meGroup.GET("/integrations", r.params.UserHandler.ListIntegrations)
		meGroup.PUT("/integrations", r.params.UserHandler.UpsertIntegration)
		meGroup.DELETE("/integrations/:provider", r.params.UserHandler.DeleteIntegration)
	}
}

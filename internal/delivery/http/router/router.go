// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cabinet/internal/delivery/http/middleware"
	"cabinet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	accounts := e.Group("/api/accounts")
	accounts.POST("/login", r.accountHandler.Login)

	authed := accounts.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/me", r.accountHandler.GetMe)
		authed.DELETE("/me", r.accountHandler.DeleteMe)
		authed.PUT("/updateUsername", r.accountHandler.UpdateUsername)
		authed.PUT("/updateLastActive", r.accountHandler.UpdateLastActive)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/api/middleware"
	"accounts/internal/delivery/api/router/handler"

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
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/users")
	{
		users.POST("/register", r.accountHandler.Register)
		users.POST("/login", r.accountHandler.Login)
		users.GET("/checkuser", r.accountHandler.GetSelf, r.authMiddleware.RequireBearer)
		users.GET("/:id", r.accountHandler.GetByID)
		users.PATCH("/edit/:id", r.accountHandler.EditAccount, r.authMiddleware.RequireBearer)
		users.DELETE("/:id", r.accountHandler.DeleteAccount, r.authMiddleware.RequireBearer)
	}
}

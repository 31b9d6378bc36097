// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"markd/internal/delivery/http/middleware"
	"markd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	BookmarkHandler     *handler.BookmarkHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	bookmarkHandler     *handler.BookmarkHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		bookmarkHandler:     params.BookmarkHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, no token required
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Profile routes. GET keeps the /users/me shape, PATCH targets the
	// caller implied by the token.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PATCH("", r.userHandler.EditProfile)
	}

	// Bookmark routes, all ownership-checked in the usecase layer
	bookmarkGroup := e.Group("/bookmarks")
	bookmarkGroup.Use(r.authMiddleware.Authenticate)
	{
		bookmarkGroup.POST("", r.bookmarkHandler.Create)
		bookmarkGroup.GET("", r.bookmarkHandler.List)
		bookmarkGroup.GET("/:id", r.bookmarkHandler.GetByID)
		bookmarkGroup.PATCH("/:id", r.bookmarkHandler.UpdateByID)
		bookmarkGroup.DELETE("/:id", r.bookmarkHandler.DeleteByID)
	}
}

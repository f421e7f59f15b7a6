// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trivia/internal/delivery/http/middleware"
	"trivia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	QuestionHandler     *handler.QuestionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	questionHandler     *handler.QuestionHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		questionHandler:     params.QuestionHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Public auth routes
		api.POST("/register", r.accountHandler.Register)
		api.POST("/login", r.accountHandler.Login)

		// External provider route: anonymous fetch is allowed, but a
		// presented token must verify, and only authenticated callers
		// have their fetch persisted.
		api.GET("/external-questions", r.questionHandler.Import, r.authMiddleware.OptionalAuthenticate)
	}

	// Question routes that require authentication
	questionGroup := api.Group("/questions")
	questionGroup.Use(r.authMiddleware.Authenticate)
	{
		questionGroup.GET("", r.questionHandler.List)
		questionGroup.POST("", r.questionHandler.Create)
		questionGroup.GET("/:id", r.questionHandler.Get)
		questionGroup.PUT("/:id", r.questionHandler.Update)
		questionGroup.DELETE("/:id", r.questionHandler.Delete)
	}

	api.GET("/advanced-search", r.questionHandler.Search, r.authMiddleware.Authenticate)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"coach/internal/delivery/http/middleware"
	"coach/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	WorkoutHandler *handler.WorkoutHandler
	RatingHandler  *handler.RatingHandler
	CoachHandler   *handler.CoachHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	workoutHandler *handler.WorkoutHandler
	ratingHandler  *handler.RatingHandler
	coachHandler   *handler.CoachHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		workoutHandler: params.WorkoutHandler,
		ratingHandler:  params.RatingHandler,
		coachHandler:   params.CoachHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Everything under /api requires a valid bearer token
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.POST("/workouts", r.workoutHandler.Log)
		apiGroup.GET("/workouts", r.workoutHandler.List)

		apiGroup.POST("/ratings", r.ratingHandler.Upsert)
		apiGroup.GET("/ratings", r.ratingHandler.List)

		apiGroup.POST("/generate-plan", r.coachHandler.GeneratePlan)
		apiGroup.POST("/chat", r.coachHandler.Chat)
	}
}

// Package router wires the API handlers to their routes.
package router

import (
	"nextstep/internal/delivery/api/middleware"
	"nextstep/internal/delivery/api/router/handler"
	"nextstep/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	LearnerHandler   *handler.LearnerHandler
	MentorHandler    *handler.MentorHandler
	DashboardHandler *handler.DashboardHandler
	RoadmapHandler   *handler.RoadmapHandler
	HealthHandler    *handler.HealthHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	learnerHandler   *handler.LearnerHandler
	mentorHandler    *handler.MentorHandler
	dashboardHandler *handler.DashboardHandler
	roadmapHandler   *handler.RoadmapHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		learnerHandler:   params.LearnerHandler,
		mentorHandler:    params.MentorHandler,
		dashboardHandler: params.DashboardHandler,
		roadmapHandler:   params.RoadmapHandler,
		healthHandler:    params.HealthHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes mounts every endpoint under /api.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", r.healthHandler.Check)

	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Account routes
	users := api.Group("/users")
	{
		users.POST("/register", r.userHandler.Register)
		users.POST("/verify-otp", r.userHandler.VerifyOTP)
		users.POST("/resend-otp", r.userHandler.ResendOTP)
		users.POST("/login", r.userHandler.Login)

		users.GET("/me", r.userHandler.Me, authenticate)
		users.PUT("/update-profile", r.userHandler.UpdateProfile, authenticate)

		users.GET("/my-sessions", r.learnerHandler.MySessions, authenticate)
		users.GET("/my-sessions/:id/qrcode", r.learnerHandler.SessionQRCode, authenticate)
		users.GET("/my-messages", r.learnerHandler.MyMessages, authenticate)
		users.POST("/my-messages/:threadId/reply", r.learnerHandler.Reply, authenticate)
	}

	// Mentor directory
	mentors := api.Group("/mentors")
	{
		mentors.GET("/all", r.mentorHandler.List)
		mentors.POST("/add", r.mentorHandler.Add, authenticate, adminOnly)
		mentors.GET("/:mentorId", r.mentorHandler.Get)
		mentors.POST("/:mentorId/book", r.learnerHandler.BookSession, authenticate)
		mentors.POST("/:mentorId/message", r.learnerHandler.MessageMentor, authenticate)
	}

	// Mentor dashboard, caller resolved to a mentor profile once per request
	dashboard := api.Group("/mentor", authenticate, r.authMiddleware.RequireMentor)
	{
		dashboard.GET("/messages", r.dashboardHandler.Messages)
		dashboard.POST("/messages/:threadId/reply", r.dashboardHandler.Reply)
		dashboard.GET("/sessions", r.dashboardHandler.Sessions)
		dashboard.POST("/sessions/scan", r.dashboardHandler.CheckIn)
		dashboard.PUT("/sessions/:id/link", r.dashboardHandler.AddLink)
		dashboard.PUT("/sessions/:id/complete", r.dashboardHandler.Complete)
	}

	roadmaps := api.Group("/roadmaps")
	{
		roadmaps.GET("/all", r.roadmapHandler.List)
		roadmaps.POST("/add", r.roadmapHandler.Create, authenticate, adminOnly)
		roadmaps.GET("/id/:id", r.roadmapHandler.Get)
		roadmaps.GET("/:domain", r.roadmapHandler.ListByDomain)
	}
}

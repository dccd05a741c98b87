// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ProfileHandler *handler.ProfileHandler
	CleanupHandler *handler.CleanupHandler
	FlowMiddleware *middleware.FlowMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	profileHandler *handler.ProfileHandler
	cleanupHandler *handler.CleanupHandler
	flowMiddleware *middleware.FlowMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		profileHandler: params.ProfileHandler,
		cleanupHandler: params.CleanupHandler,
		flowMiddleware: params.FlowMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Best-effort cleanup endpoint hit on abrupt page exit. Other methods
	// on this path get echo's default 405.
	e.POST("/cleanup-anonymous", r.cleanupHandler.CleanupAnonymous)

	// Session lifecycle routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.GET("/entry-token", r.sessionHandler.EntryToken)
		sessionGroup.POST("/anonymous", r.sessionHandler.SignInAnonymous)
		sessionGroup.POST("/federated", r.sessionHandler.SignInFederated)
		sessionGroup.POST("/upgrade", r.sessionHandler.Upgrade)
		sessionGroup.POST("/switch-existing", r.sessionHandler.SwitchToExisting)
		sessionGroup.POST("/signout", r.sessionHandler.SignOut)
	}

	// Profile routes
	e.GET("/profile", r.profileHandler.GetProfile)
	e.POST("/profile", r.profileHandler.CreateProfile)
	e.PATCH("/profile", r.profileHandler.UpdateProfile)

	// Onboarding detail pages require the flow token issued on entry
	onboardingGroup := e.Group("/onboarding")
	onboardingGroup.Use(r.flowMiddleware.RequireFlowToken)
	{
		onboardingGroup.GET("/state", r.profileHandler.OnboardingState)
	}
}

// Package router wires the API handlers to their routes.
package router

import (
	"agenda/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EventHandler   *handler.EventHandler
	GroupHandler   *handler.GroupHandler
	ProfileHandler *handler.ProfileHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	eventHandler   *handler.EventHandler
	groupHandler   *handler.GroupHandler
	profileHandler *handler.ProfileHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		eventHandler:   params.EventHandler,
		groupHandler:   params.GroupHandler,
		profileHandler: params.ProfileHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Local profile and app-wide actions
	api.GET("/profile", r.profileHandler.GetProfile)
	api.POST("/profile", r.profileHandler.Login)
	api.POST("/reset", r.profileHandler.Reset)

	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", r.profileHandler.GetSettings)
		settingsGroup.PUT("", r.profileHandler.UpdateSettings)
	}

	voicesGroup := api.Group("/voices")
	{
		voicesGroup.GET("", r.profileHandler.ListVoices)
		voicesGroup.POST("/test", r.profileHandler.TestVoice)
	}

	api.GET("/notifications/pending", r.profileHandler.PendingNotifications)

	eventsGroup := api.Group("/events")
	{
		eventsGroup.GET("", r.eventHandler.ListEvents)
		eventsGroup.POST("", r.eventHandler.CreateEvent)
		eventsGroup.GET("/calendar.ics", r.eventHandler.ExportCalendar)
		eventsGroup.POST("/:id/complete", r.eventHandler.CompleteEvent)
		eventsGroup.DELETE("/:id", r.eventHandler.DeleteEvent)
	}

	groupsGroup := api.Group("/groups")
	{
		groupsGroup.GET("", r.groupHandler.ListGroups)
		groupsGroup.POST("", r.groupHandler.CreateGroup)
		groupsGroup.DELETE("/:id", r.groupHandler.DeleteGroup)
	}
}

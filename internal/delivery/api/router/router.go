// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petfeeder/internal/delivery/api/middleware"
	"petfeeder/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler   *handler.DeviceHandler
	FeederHandler   *handler.FeederHandler
	ScheduleHandler *handler.ScheduleHandler
	SettingsHandler *handler.SettingsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler   *handler.DeviceHandler
	feederHandler   *handler.FeederHandler
	scheduleHandler *handler.ScheduleHandler
	settingsHandler *handler.SettingsHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:   params.DeviceHandler,
		feederHandler:   params.FeederHandler,
		scheduleHandler: params.ScheduleHandler,
		settingsHandler: params.SettingsHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Factory-fresh devices have no credentials yet.
	apiV1.GET("/devices/verify/:device_id/:secret", r.deviceHandler.Verify)

	deviceGroup := apiV1.Group("/device")
	deviceGroup.Use(r.authMiddleware.AuthenticateDevice)
	{
		deviceGroup.POST("/heartbeat", r.deviceHandler.Heartbeat)
		deviceGroup.POST("/events/complete", r.deviceHandler.CompleteEvent)
		deviceGroup.GET("/next-meal", r.deviceHandler.NextMeal)
		deviceGroup.POST("/feeding-logs", r.deviceHandler.RecordFeeding)
	}

	feedersGroup := apiV1.Group("/feeders")
	feedersGroup.Use(r.authMiddleware.Authenticate)
	{
		feedersGroup.POST("/activate", r.feederHandler.Activate)
		feedersGroup.GET("", r.feederHandler.List)
		feedersGroup.GET("/next-meals", r.feederHandler.NextMeals)
		feedersGroup.PUT("/:id", r.feederHandler.Update)
		feedersGroup.DELETE("/:id", r.feederHandler.Delete)
		feedersGroup.POST("/:id/feed", r.feederHandler.Feed)
		feedersGroup.GET("/:id/next-meal", r.feederHandler.NextMeal)
		feedersGroup.GET("/:id/feeding-logs", r.feederHandler.FeedingLogs)

		feedersGroup.GET("/:id/schedules", r.scheduleHandler.List)
		feedersGroup.POST("/:id/schedules", r.scheduleHandler.Create)
		feedersGroup.PUT("/:id/schedules/:scheduleId", r.scheduleHandler.Update)
		feedersGroup.DELETE("/:id/schedules/:scheduleId", r.scheduleHandler.Delete)
	}

	petsGroup := apiV1.Group("/pets")
	petsGroup.Use(r.authMiddleware.Authenticate)
	{
		petsGroup.GET("", r.scheduleHandler.ListPets)
		petsGroup.POST("", r.scheduleHandler.CreatePet)
	}

	settingsGroup := apiV1.Group("/settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.GET("", r.settingsHandler.Get)
		settingsGroup.PUT("", r.settingsHandler.Update)
		settingsGroup.GET("/notifications", r.settingsHandler.GetNotifications)
		settingsGroup.PUT("/notifications", r.settingsHandler.UpdateNotifications)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"repairdesk/internal/delivery/http/middleware"
	"repairdesk/internal/delivery/http/router/handler"
	"repairdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	BookingHandler      *handler.BookingHandler
	NotificationHandler *handler.NotificationHandler
	FeedHandler         *handler.FeedHandler
	DeviceHandler       *handler.DeviceHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	cartHandler         *handler.CartHandler
	bookingHandler      *handler.BookingHandler
	notificationHandler *handler.NotificationHandler
	feedHandler         *handler.FeedHandler
	deviceHandler       *handler.DeviceHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		bookingHandler:      params.BookingHandler,
		notificationHandler: params.NotificationHandler,
		feedHandler:         params.FeedHandler,
		deviceHandler:       params.DeviceHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog browsing
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/brands", r.catalogHandler.ListBrands)
		catalogGroup.GET("/brands/:id/models", r.catalogHandler.ListModels)
		catalogGroup.GET("/services", r.catalogHandler.ListServices)
		catalogGroup.GET("/promotions", r.catalogHandler.ListPromotionalCards)
	}

	// Cart routes require authentication and the customer role
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	cartGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		cartGroup.GET("", r.cartHandler.ListItems)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
	}

	// Booking routes: listing and cancel are role-scoped inside the usecase,
	// the repairman transitions are guarded here
	bookingGroup := e.Group("/bookings")
	bookingGroup.Use(r.authMiddleware.Authenticate)
	{
		bookingGroup.GET("", r.bookingHandler.ListBookings)
		bookingGroup.POST("/:id/cancel", r.bookingHandler.Cancel)

		repairmanGroup := bookingGroup.Group("")
		repairmanGroup.Use(r.authMiddleware.RequireRole(entity.RoleRepairman))
		repairmanGroup.POST("/:id/accept", r.bookingHandler.Accept)
		repairmanGroup.POST("/:id/start", r.bookingHandler.Start)
		repairmanGroup.POST("/:id/complete", r.bookingHandler.Complete)
	}

	// Notification routes for any authenticated user
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListUnread)
		notificationGroup.POST("/:id/read", r.notificationHandler.Dismiss)
	}

	// Live change feed for dashboards
	e.GET("/feed", r.feedHandler.Stream, r.authMiddleware.Authenticate)

	// Push-device registration
	e.POST("/devices", r.deviceHandler.RegisterDevice, r.authMiddleware.Authenticate)

	// Admin routes require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/stats", r.adminHandler.GetDashboardStats)
		adminGroup.GET("/services", r.adminHandler.ListServices)
		adminGroup.POST("/services", r.adminHandler.CreateService)
		adminGroup.PUT("/services/:id", r.adminHandler.UpdateService)
		adminGroup.GET("/promotions", r.adminHandler.ListPromotionalCards)
		adminGroup.POST("/promotions", r.adminHandler.CreatePromotionalCard)
		adminGroup.PUT("/promotions/:id", r.adminHandler.UpdatePromotionalCard)
		adminGroup.DELETE("/promotions/:id", r.adminHandler.DeletePromotionalCard)
	}
}

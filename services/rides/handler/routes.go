package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridelink/dispatch/internal/pkg/middleware"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/rides"
	httpHandler "github.com/ridelink/dispatch/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes for ride operations
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	ridesGroup := e.Group("/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))

	ridesGroup.POST("", h.ridesHTTP.RequestRide, middleware.RequireRole(models.RolePassenger))
	ridesGroup.GET("", h.ridesHTTP.ListRides)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.POST("/:rideID/accept", h.ridesHTTP.AcceptRide, middleware.RequireRole(models.RoleDriver))
	ridesGroup.PATCH("/:rideID/status", h.ridesHTTP.UpdateRideStatus)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridelink/dispatch/internal/pkg/middleware"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/drivers"
	httpHandler "github.com/ridelink/dispatch/services/drivers/handler/http"
)

// Handler combines all handlers for the drivers service
type Handler struct {
	driversHTTP *httpHandler.DriversHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC, cfg *models.Config) *Handler {
	return &Handler{
		driversHTTP: httpHandler.NewDriversHandler(driverUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes for driver verification
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	driversGroup := e.Group("/drivers", auth)
	driversGroup.POST("/applications", h.driversHTTP.SubmitApplication)
	driversGroup.GET("/applications/:applicationID", h.driversHTTP.GetApplication)

	adminGroup := e.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	adminGroup.GET("/applications", h.driversHTTP.ListPendingApplications)
	adminGroup.POST("/applications/:applicationID/decision", h.driversHTTP.DecideApplication)
}

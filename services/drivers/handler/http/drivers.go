package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/dispatch/internal/pkg/middleware"
	"github.com/ridelink/dispatch/internal/pkg/models"
	nrpkg "github.com/ridelink/dispatch/internal/pkg/newrelic"
	"github.com/ridelink/dispatch/internal/utils"
	"github.com/ridelink/dispatch/services/drivers"
)

// DriversHandler handles HTTP requests for driver verification
type DriversHandler struct {
	driverUC drivers.DriverUC
}

// NewDriversHandler creates a new driver verification HTTP handler
func NewDriversHandler(driverUC drivers.DriverUC) *DriversHandler {
	return &DriversHandler{
		driverUC: driverUC,
	}
}

// SubmitApplication handles a user filing a driver application
func (h *DriversHandler) SubmitApplication(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.SubmitApplication")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req models.SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	app, err := h.driverUC.SubmitApplication(c.Request().Context(), userID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return applicationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetApplication returns a single application to its owner or an admin
func (h *DriversHandler) GetApplication(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.GetApplication")

	applicationID, err := strconv.ParseInt(c.Param("applicationID"), 10, 64)
	if err != nil || applicationID <= 0 {
		return utils.BadRequestResponse(c, "Application ID must be a positive integer")
	}
	nrpkg.AddTransactionAttribute(txn, "application.id", applicationID)

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}
	role, _ := middleware.RoleFromContext(c)

	app, err := h.driverUC.GetApplication(c.Request().Context(), applicationID, userID, role)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return applicationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Application retrieved successfully", app)
}

// ListPendingApplications returns the admin review queue
func (h *DriversHandler) ListPendingApplications(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.ListPendingApplications")

	apps, err := h.driverUC.ListPendingApplications(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return applicationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Applications retrieved successfully", apps)
}

// DecideApplication handles an administrator verdict on a pending application
func (h *DriversHandler) DecideApplication(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.DecideApplication")

	applicationID, err := strconv.ParseInt(c.Param("applicationID"), 10, 64)
	if err != nil || applicationID <= 0 {
		return utils.BadRequestResponse(c, "Application ID must be a positive integer")
	}
	nrpkg.AddTransactionAttribute(txn, "application.id", applicationID)

	var req models.DecideApplicationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	app, err := h.driverUC.DecideApplication(c.Request().Context(), applicationID, req.Verdict)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return applicationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Application decided successfully", app)
}

// applicationErrorResponse maps domain errors onto HTTP status codes
func applicationErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/middleware"
	"github.com/ridelink/dispatch/internal/pkg/models"
	nrpkg "github.com/ridelink/dispatch/internal/pkg/newrelic"
	"github.com/ridelink/dispatch/internal/utils"
	"github.com/ridelink/dispatch/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// RequestRide handles a passenger's ride request
func (h *RidesHandler) RequestRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.RequestRide")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.rideUC.RequestRide(c.Request().Context(), passengerID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return rideErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", resp)
}

// AcceptRide handles a driver claiming a pending ride
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.AcceptRide")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID)

	ride, err := h.rideUC.AcceptRide(c.Request().Context(), rideID, driverID)
	if err != nil {
		logger.Warn("ride accept rejected",
			logger.Int64("ride_id", rideID),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return rideErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted successfully", ride)
}

// UpdateRideStatus handles a participant moving a ride to a terminal state
func (h *RidesHandler) UpdateRideStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.UpdateRideStatus")

	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.UpdateRideStatusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.UpdateRideStatus(c.Request().Context(), rideID, req.Status, actorID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return rideErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated successfully", ride)
}

// GetRide returns a single ride
func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GetRide")

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return rideErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// ListRides returns the authenticated user's rides
func (h *RidesHandler) ListRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListRides")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}
	role, _ := middleware.RoleFromContext(c)

	ridesList, err := h.rideUC.ListRidesForUser(c.Request().Context(), userID, role)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return rideErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", ridesList)
}

func parseRideID(c echo.Context) (int64, error) {
	raw := c.Param("rideID")
	rideID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || rideID <= 0 {
		return 0, errors.New("ride ID must be a positive integer")
	}
	return rideID, nil
}

// rideErrorResponse maps domain errors onto HTTP status codes
func rideErrorResponse(c echo.Context, err error) error {
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

package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	nrpkg "github.com/ridelink/dispatch/internal/pkg/newrelic"
	"github.com/ridelink/dispatch/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	rideGW   rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		rideGW:   rideGW,
	}
}

// RequestRide validates the pickup and dropoff, prices the trip, persists the
// ride in the requested state and fans the request out to online drivers.
func (uc *rideUC) RequestRide(ctx context.Context, passengerID uuid.UUID, req *models.CreateRideRequest) (*models.CreateRideResponse, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.RequestRide").End()

	pickup := models.Coordinate{Latitude: req.PickupLat, Longitude: req.PickupLng}
	dropoff := models.Coordinate{Latitude: req.DropoffLat, Longitude: req.DropoffLng}
	if !pickup.Valid() {
		return nil, fmt.Errorf("%w: pickup coordinates out of range", models.ErrValidation)
	}
	if !dropoff.Valid() {
		return nil, fmt.Errorf("%w: dropoff coordinates out of range", models.ErrValidation)
	}

	estimate := EstimateFare(uc.cfg.Pricing, pickup, dropoff)

	ride := &models.RideRequest{
		PassengerID: passengerID,
		Pickup:      pickup,
		Dropoff:     dropoff,
		DistanceKm:  estimate.DistanceKm,
		Fare:        estimate.Fare,
		Status:      models.RideStatusRequested,
	}

	created, err := uc.rideRepo.CreateRideRequest(ctx, ride)
	if err != nil {
		logger.ErrorCtx(ctx, "failed to persist ride request",
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
		return nil, err
	}

	// The event goes out only after the ride is durably stored, so consumers
	// can always resolve the ride they are told about.
	if err := uc.rideGW.PublishRideRequested(ctx, created); err != nil {
		logger.WarnCtx(ctx, "ride persisted but fan-out publish failed",
			logger.Int64("ride_id", created.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "ride requested",
		logger.Int64("ride_id", created.ID),
		logger.String("passenger_id", passengerID.String()),
		logger.Float64("distance_km", created.DistanceKm),
		logger.Int("fare", created.Fare))

	return &models.CreateRideResponse{
		RideID:     created.ID,
		Fare:       created.Fare,
		DistanceKm: created.DistanceKm,
	}, nil
}

// AcceptRide claims a ride for a driver. The repository performs the claim as
// a single compare-and-set, so of N concurrent drivers exactly one wins and
// the rest observe models.ErrConflict.
func (uc *rideUC) AcceptRide(ctx context.Context, rideID int64, driverID uuid.UUID) (*models.RideRequest, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.AcceptRide").End()

	ride, err := uc.rideRepo.AcceptRideRequest(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}

	if err := uc.rideGW.PublishRideAccepted(ctx, ride); err != nil {
		logger.WarnCtx(ctx, "ride accepted but notify publish failed",
			logger.Int64("ride_id", ride.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "ride accepted",
		logger.Int64("ride_id", ride.ID),
		logger.String("driver_id", driverID.String()))
	return ride, nil
}

// UpdateRideStatus moves a ride to a terminal state on behalf of one of its
// parties. Only participants of the ride may move it.
func (uc *rideUC) UpdateRideStatus(ctx context.Context, rideID int64, status models.RideStatus, actorID uuid.UUID) (*models.RideRequest, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.UpdateRideStatus").End()

	if !status.IsTerminal() {
		return nil, fmt.Errorf("%w: status %q is not a terminal state", models.ErrValidation, status)
	}

	current, err := uc.rideRepo.GetRideRequest(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(current, actorID) {
		return nil, fmt.Errorf("%w: user %s is not part of ride %d", models.ErrValidation, actorID, rideID)
	}

	ride, err := uc.rideRepo.UpdateRideStatus(ctx, rideID, status)
	if err != nil {
		return nil, err
	}

	if err := uc.rideGW.PublishRideStatusChanged(ctx, ride, actorID); err != nil {
		logger.WarnCtx(ctx, "status persisted but notify publish failed",
			logger.Int64("ride_id", ride.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "ride status updated",
		logger.Int64("ride_id", ride.ID),
		logger.String("status", string(ride.Status)),
		logger.String("actor_id", actorID.String()))
	return ride, nil
}

// GetRide returns a single ride by id.
func (uc *rideUC) GetRide(ctx context.Context, rideID int64) (*models.RideRequest, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.GetRide").End()
	return uc.rideRepo.GetRideRequest(ctx, rideID)
}

// ListRidesForUser returns the caller's rides, resolved by role: passengers
// see rides they requested, drivers see rides they are bound to.
func (uc *rideUC) ListRidesForUser(ctx context.Context, userID uuid.UUID, role string) ([]*models.RideRequest, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.ListRidesForUser").End()

	if role == models.RoleDriver {
		return uc.rideRepo.ListRideRequestsByDriver(ctx, userID)
	}
	return uc.rideRepo.ListRideRequestsByPassenger(ctx, userID)
}

func isParticipant(ride *models.RideRequest, userID uuid.UUID) bool {
	if ride.PassengerID == userID {
		return true
	}
	return ride.DriverID != nil && *ride.DriverID == userID
}

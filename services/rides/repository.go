package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridelink/dispatch/services/rides RideRepo
type RideRepo interface {
	CreateRideRequest(ctx context.Context, ride *models.RideRequest) (*models.RideRequest, error)
	GetRideRequest(ctx context.Context, rideID int64) (*models.RideRequest, error)
	ListRideRequestsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.RideRequest, error)
	ListRideRequestsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.RideRequest, error)

	// AcceptRideRequest atomically binds a driver to a ride that is still in
	// the requested state. Returns models.ErrConflict when the ride exists but
	// was already claimed, models.ErrNotFound when it does not exist.
	AcceptRideRequest(ctx context.Context, rideID int64, driverID uuid.UUID) (*models.RideRequest, error)

	// UpdateRideStatus atomically moves a ride out of a non-terminal state.
	// Returns models.ErrInvalidTransition when the ride is already terminal,
	// models.ErrNotFound when it does not exist.
	UpdateRideStatus(ctx context.Context, rideID int64, status models.RideStatus) (*models.RideRequest, error)
}

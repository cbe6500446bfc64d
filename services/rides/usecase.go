package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridelink/dispatch/services/rides RideUC
type RideUC interface {
	RequestRide(ctx context.Context, passengerID uuid.UUID, req *models.CreateRideRequest) (*models.CreateRideResponse, error)
	AcceptRide(ctx context.Context, rideID int64, driverID uuid.UUID) (*models.RideRequest, error)
	UpdateRideStatus(ctx context.Context, rideID int64, status models.RideStatus, actorID uuid.UUID) (*models.RideRequest, error)
	GetRide(ctx context.Context, rideID int64) (*models.RideRequest, error)
	ListRidesForUser(ctx context.Context, userID uuid.UUID, role string) ([]*models.RideRequest, error)
}

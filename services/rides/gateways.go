package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// RideGW defines the interface for publishing ride events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ridelink/dispatch/services/rides RideGW
type RideGW interface {
	PublishRideRequested(ctx context.Context, ride *models.RideRequest) error
	PublishRideAccepted(ctx context.Context, ride *models.RideRequest) error
	PublishRideStatusChanged(ctx context.Context, ride *models.RideRequest, actorID uuid.UUID) error
}

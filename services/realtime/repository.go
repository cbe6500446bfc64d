package realtime

import (
	"context"
	"time"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// LocationRepo defines the interface for driver location storage
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridelink/dispatch/services/realtime LocationRepo
type LocationRepo interface {
	StoreDriverLocation(ctx context.Context, driverID string, location models.Location, ttl time.Duration) error
	RemoveDriverLocation(ctx context.Context, driverID string) error
}

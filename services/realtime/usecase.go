package realtime

import (
	"context"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// LocationUC defines the interface for driver location tracking
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridelink/dispatch/services/realtime LocationUC
type LocationUC interface {
	UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error
	ClearDriverPresence(ctx context.Context, driverID string) error
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/realtime"
)

// locationUC implements the realtime.LocationUC interface
type locationUC struct {
	cfg          *models.Config
	locationRepo realtime.LocationRepo
}

// NewLocationUC creates a new driver location use case
func NewLocationUC(cfg *models.Config, locationRepo realtime.LocationRepo) realtime.LocationUC {
	return &locationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
	}
}

// UpdateDriverLocation validates and records a driver location beacon. Each
// beacon refreshes the driver's presence TTL, so a driver that stops sending
// falls out of the live pool on its own.
func (uc *locationUC) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error {
	coord := models.Coordinate{Latitude: location.Latitude, Longitude: location.Longitude}
	if !coord.Valid() {
		return fmt.Errorf("%w: location coordinates out of range", models.ErrValidation)
	}
	if location.Timestamp.IsZero() {
		location.Timestamp = time.Now().UTC()
	}

	ttl := time.Duration(uc.cfg.Realtime.PresenceTTLSec) * time.Second
	if err := uc.locationRepo.StoreDriverLocation(ctx, driverID, location, ttl); err != nil {
		logger.ErrorCtx(ctx, "failed to store driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return err
	}
	return nil
}

// ClearDriverPresence removes a driver from the live pool, typically on
// disconnect
func (uc *locationUC) ClearDriverPresence(ctx context.Context, driverID string) error {
	return uc.locationRepo.RemoveDriverLocation(ctx, driverID)
}

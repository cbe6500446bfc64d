package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/database"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
	"github.com/ridelink/dispatch/services/realtime"
)

// LocationRepo stores driver positions in Redis: the raw location with a
// presence TTL, membership in the geo set for radius queries, and a geohash
// cell for coarse proximity grouping.
type LocationRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new driver location repository
func NewLocationRepository(cfg *models.Config, redisClient *database.RedisClient) realtime.LocationRepo {
	return &LocationRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// StoreDriverLocation records a driver's position and refreshes their presence
func (r *LocationRepo) StoreDriverLocation(ctx context.Context, driverID string, location models.Location, ttl time.Duration) error {
	payload, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	if err := r.redisClient.Set(ctx, locationKey, payload, ttl); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to index driver location: %w", err)
	}

	cell := utils.EncodeLocation(models.Coordinate{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, r.cfg.Realtime.GeohashPrecision)
	presenceKey := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	if err := r.redisClient.Set(ctx, presenceKey, cell, ttl); err != nil {
		return fmt.Errorf("failed to refresh driver presence: %w", err)
	}
	return nil
}

// RemoveDriverLocation drops the driver from the live position indexes
func (r *LocationRepo) RemoveDriverLocation(ctx context.Context, driverID string) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}

	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	if err := r.redisClient.Delete(ctx, locationKey); err != nil {
		return fmt.Errorf("failed to remove driver location: %w", err)
	}

	presenceKey := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	if err := r.redisClient.Delete(ctx, presenceKey); err != nil {
		return fmt.Errorf("failed to remove driver presence: %w", err)
	}
	return nil
}

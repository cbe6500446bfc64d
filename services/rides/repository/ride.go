package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/rides"
)

const rideColumns = `
	id, passenger_id, driver_id,
	pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
	distance_km, fare, status, created_at, updated_at`

// RideRepo handles persistence of ride requests
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) rides.RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRideRequest inserts a new ride in the requested state
func (r *RideRepo) CreateRideRequest(ctx context.Context, ride *models.RideRequest) (*models.RideRequest, error) {
	query := `
		INSERT INTO ride_requests (
			passenger_id, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			distance_km, fare, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query,
		ride.PassengerID,
		ride.Pickup.Latitude,
		ride.Pickup.Longitude,
		ride.Dropoff.Latitude,
		ride.Dropoff.Longitude,
		ride.DistanceKm,
		ride.Fare,
		ride.Status,
		now,
	)
	if err := row.Scan(&ride.ID, &ride.CreatedAt, &ride.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert ride request: %w", err)
	}
	return ride, nil
}

// GetRideRequest retrieves a ride by id
func (r *RideRepo) GetRideRequest(ctx context.Context, rideID int64) (*models.RideRequest, error) {
	query := `SELECT` + rideColumns + ` FROM ride_requests WHERE id = $1`

	ride, err := scanRide(r.db.QueryRowContext(ctx, query, rideID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: ride %d", models.ErrNotFound, rideID)
		}
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}
	return ride, nil
}

// ListRideRequestsByPassenger returns all rides requested by a passenger,
// newest first
func (r *RideRepo) ListRideRequestsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.RideRequest, error) {
	query := `SELECT` + rideColumns + ` FROM ride_requests WHERE passenger_id = $1 ORDER BY created_at DESC`
	return r.listRides(ctx, query, passengerID)
}

// ListRideRequestsByDriver returns all rides a driver is bound to, newest first
func (r *RideRepo) ListRideRequestsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.RideRequest, error) {
	query := `SELECT` + rideColumns + ` FROM ride_requests WHERE driver_id = $1 ORDER BY created_at DESC`
	return r.listRides(ctx, query, driverID)
}

// AcceptRideRequest claims a ride for a driver with a single guarded update.
// The WHERE clause only matches the requested state, so concurrent claims on
// the same ride resolve to exactly one winner at the database.
func (r *RideRepo) AcceptRideRequest(ctx context.Context, rideID int64, driverID uuid.UUID) (*models.RideRequest, error) {
	query := `
		UPDATE ride_requests
		SET driver_id = $1, status = $2, updated_at = $3
		WHERE id = $4 AND status = $5
		RETURNING` + rideColumns

	ride, err := scanRide(r.db.QueryRowContext(ctx, query,
		driverID, models.RideStatusAccepted, time.Now().UTC(), rideID, models.RideStatusRequested))
	if err == nil {
		return ride, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to accept ride request: %w", err)
	}

	// Zero rows means either the ride was already claimed or it never
	// existed. Disambiguate so the caller can answer precisely.
	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM ride_requests WHERE id = $1`, rideID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: ride %d", models.ErrNotFound, rideID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check ride state: %w", err)
	}
	return nil, fmt.Errorf("%w: ride %d is %s", models.ErrConflict, rideID, status)
}

// UpdateRideStatus moves a ride to a new status as long as it has not already
// reached a terminal state
func (r *RideRepo) UpdateRideStatus(ctx context.Context, rideID int64, status models.RideStatus) (*models.RideRequest, error) {
	query := `
		UPDATE ride_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status IN ($4, $5)
		RETURNING` + rideColumns

	ride, err := scanRide(r.db.QueryRowContext(ctx, query,
		status, time.Now().UTC(), rideID, models.RideStatusRequested, models.RideStatusAccepted))
	if err == nil {
		return ride, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to update ride status: %w", err)
	}

	var current string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM ride_requests WHERE id = $1`, rideID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: ride %d", models.ErrNotFound, rideID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check ride state: %w", err)
	}
	return nil, fmt.Errorf("%w: ride %d is already %s", models.ErrInvalidTransition, rideID, current)
}

func (r *RideRepo) listRides(ctx context.Context, query string, userID uuid.UUID) ([]*models.RideRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ride requests: %w", err)
	}
	defer rows.Close()

	result := make([]*models.RideRequest, 0)
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ride request: %w", err)
		}
		result = append(result, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ride requests: %w", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRide(row rowScanner) (*models.RideRequest, error) {
	ride := &models.RideRequest{}
	var driverID sql.NullString

	err := row.Scan(
		&ride.ID,
		&ride.PassengerID,
		&driverID,
		&ride.Pickup.Latitude,
		&ride.Pickup.Longitude,
		&ride.Dropoff.Latitude,
		&ride.Dropoff.Longitude,
		&ride.DistanceKm,
		&ride.Fare,
		&ride.Status,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		id, err := uuid.Parse(driverID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid driver id %q: %w", driverID.String, err)
		}
		ride.DriverID = &id
	}
	return ride, nil
}

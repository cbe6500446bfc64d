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
	"github.com/ridelink/dispatch/services/drivers"
)

const applicationColumns = `
	id, user_id, fullname, vehicle_type, vehicle_plate,
	license_number, license_doc_ref, id_doc_ref, status, created_at, updated_at`

// DriverRepo handles persistence of driver applications
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new driver application repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) drivers.DriverRepo {
	return &DriverRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateApplication inserts a new application in the pending state
func (r *DriverRepo) CreateApplication(ctx context.Context, app *models.DriverApplication) (*models.DriverApplication, error) {
	query := `
		INSERT INTO driver_applications (
			user_id, fullname, vehicle_type, vehicle_plate,
			license_number, license_doc_ref, id_doc_ref, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query,
		app.UserID,
		app.FullName,
		app.VehicleType,
		app.VehiclePlate,
		app.LicenseNumber,
		app.LicenseDocRef,
		app.IDDocRef,
		app.Status,
		now,
	)
	if err := row.Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert driver application: %w", err)
	}
	return app, nil
}

// GetApplication retrieves an application by id
func (r *DriverRepo) GetApplication(ctx context.Context, applicationID int64) (*models.DriverApplication, error) {
	query := `SELECT` + applicationColumns + ` FROM driver_applications WHERE id = $1`

	app := &models.DriverApplication{}
	err := r.db.GetContext(ctx, app, query, applicationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: application %d", models.ErrNotFound, applicationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver application: %w", err)
	}
	return app, nil
}

// HasPendingApplication reports whether the user already has an application
// under review
func (r *DriverRepo) HasPendingApplication(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM driver_applications WHERE user_id = $1 AND status = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, models.ApplicationStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to check pending application: %w", err)
	}
	return exists, nil
}

// ListApplicationsByStatus returns applications in a given state, oldest first
func (r *DriverRepo) ListApplicationsByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.DriverApplication, error) {
	query := `SELECT` + applicationColumns + ` FROM driver_applications WHERE status = $1 ORDER BY created_at ASC`

	apps := make([]*models.DriverApplication, 0)
	err := r.db.SelectContext(ctx, &apps, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver applications: %w", err)
	}
	return apps, nil
}

// DecideApplication settles a pending application and, on approval, promotes
// the applicant inside the same transaction. The guarded UPDATE carries the
// same one-winner property as the ride claim: two concurrent decisions on one
// application resolve to a single effective verdict.
func (r *DriverRepo) DecideApplication(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.DriverApplication, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin decision transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE driver_applications
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING` + applicationColumns

	app := &models.DriverApplication{}
	err = tx.GetContext(ctx, app, query, status, time.Now().UTC(), applicationID, models.ApplicationStatusPending)
	if errors.Is(err, sql.ErrNoRows) {
		var current string
		err = tx.GetContext(ctx, &current, `SELECT status FROM driver_applications WHERE id = $1`, applicationID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: application %d", models.ErrNotFound, applicationID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check application state: %w", err)
		}
		return nil, fmt.Errorf("%w: application %d is already %s", models.ErrInvalidTransition, applicationID, current)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decide application: %w", err)
	}

	if status == models.ApplicationStatusApproved {
		result, err := tx.ExecContext(ctx,
			`UPDATE users SET role = $1, is_verified = TRUE, updated_at = $2 WHERE id = $3`,
			models.RoleDriver, time.Now().UTC(), app.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to promote applicant: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to verify promotion: %w", err)
		}
		if affected == 0 {
			return nil, fmt.Errorf("%w: applicant %s", models.ErrNotFound, app.UserID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decision: %w", err)
	}
	return app, nil
}

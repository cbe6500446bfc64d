package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// DriverRepo defines the interface for driver application data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridelink/dispatch/services/drivers DriverRepo
type DriverRepo interface {
	CreateApplication(ctx context.Context, app *models.DriverApplication) (*models.DriverApplication, error)
	GetApplication(ctx context.Context, applicationID int64) (*models.DriverApplication, error)
	HasPendingApplication(ctx context.Context, userID uuid.UUID) (bool, error)
	ListApplicationsByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.DriverApplication, error)

	// DecideApplication settles a pending application in a single
	// transaction. An approval also promotes the applicant to the driver
	// role. Returns models.ErrInvalidTransition when the application was
	// already decided, models.ErrNotFound when it does not exist.
	DecideApplication(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.DriverApplication, error)
}

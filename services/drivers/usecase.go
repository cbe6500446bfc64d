package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// DriverUC defines the interface for driver verification business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridelink/dispatch/services/drivers DriverUC
type DriverUC interface {
	SubmitApplication(ctx context.Context, userID uuid.UUID, req *models.SubmitApplicationRequest) (*models.DriverApplication, error)

	// GetApplication returns one application. Applicants only see their
	// own; admins see any. Returns models.ErrNotFound in both the missing
	// and the not-yours case so the endpoint never leaks existence.
	GetApplication(ctx context.Context, applicationID int64, actorID uuid.UUID, actorRole string) (*models.DriverApplication, error)

	ListPendingApplications(ctx context.Context) ([]*models.DriverApplication, error)
	DecideApplication(ctx context.Context, applicationID int64, verdict string) (*models.DriverApplication, error)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	nrpkg "github.com/ridelink/dispatch/internal/pkg/newrelic"
	"github.com/ridelink/dispatch/services/drivers"
)

// driverUC implements the drivers.DriverUC interface
type driverUC struct {
	cfg        *models.Config
	driverRepo drivers.DriverRepo
	driverGW   drivers.DriverGW
}

// NewDriverUC creates a new driver verification use case
func NewDriverUC(
	cfg *models.Config,
	driverRepo drivers.DriverRepo,
	driverGW drivers.DriverGW,
) drivers.DriverUC {
	return &driverUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		driverGW:   driverGW,
	}
}

// SubmitApplication files a driver application for review. A user can have at
// most one application under review at a time.
func (uc *driverUC) SubmitApplication(ctx context.Context, userID uuid.UUID, req *models.SubmitApplicationRequest) (*models.DriverApplication, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.SubmitApplication").End()

	if err := validateApplication(req); err != nil {
		return nil, err
	}

	pending, err := uc.driverRepo.HasPendingApplication(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("%w: user %s already has an application under review", models.ErrConflict, userID)
	}

	app := &models.DriverApplication{
		UserID:        userID,
		FullName:      strings.TrimSpace(req.FullName),
		VehicleType:   strings.TrimSpace(req.VehicleType),
		VehiclePlate:  strings.TrimSpace(req.VehiclePlate),
		LicenseNumber: strings.TrimSpace(req.LicenseNumber),
		LicenseDocRef: req.LicenseDocRef,
		IDDocRef:      req.IDDocRef,
		Status:        models.ApplicationStatusPending,
	}

	created, err := uc.driverRepo.CreateApplication(ctx, app)
	if err != nil {
		logger.ErrorCtx(ctx, "failed to persist driver application",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return nil, err
	}

	if err := uc.driverGW.PublishApplicationSubmitted(ctx, created); err != nil {
		logger.WarnCtx(ctx, "application persisted but submit publish failed",
			logger.Int64("application_id", created.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "driver application submitted",
		logger.Int64("application_id", created.ID),
		logger.String("user_id", userID.String()))
	return created, nil
}

// GetApplication returns one application, restricted to its owner unless the
// actor is an admin. A foreign application reads as not found.
func (uc *driverUC) GetApplication(ctx context.Context, applicationID int64, actorID uuid.UUID, actorRole string) (*models.DriverApplication, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.GetApplication").End()

	app, err := uc.driverRepo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if actorRole != models.RoleAdmin && app.UserID != actorID {
		return nil, fmt.Errorf("%w: application %d not found", models.ErrNotFound, applicationID)
	}
	return app, nil
}

// ListPendingApplications returns the review queue, oldest first
func (uc *driverUC) ListPendingApplications(ctx context.Context) ([]*models.DriverApplication, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.ListPendingApplications").End()
	return uc.driverRepo.ListApplicationsByStatus(ctx, models.ApplicationStatusPending)
}

// DecideApplication settles a pending application. Approvals promote the
// applicant to the driver role in the same transaction as the status change,
// so a crash between the two can never leave an approved user unpromoted.
func (uc *driverUC) DecideApplication(ctx context.Context, applicationID int64, verdict string) (*models.DriverApplication, error) {
	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "usecase.DecideApplication").End()

	var status models.ApplicationStatus
	switch verdict {
	case models.VerdictApproved:
		status = models.ApplicationStatusApproved
	case models.VerdictRejected:
		status = models.ApplicationStatusRejected
	default:
		return nil, fmt.Errorf("%w: verdict must be %q or %q", models.ErrValidation,
			models.VerdictApproved, models.VerdictRejected)
	}

	decided, err := uc.driverRepo.DecideApplication(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}

	if err := uc.driverGW.PublishApplicationDecided(ctx, decided); err != nil {
		logger.WarnCtx(ctx, "decision persisted but notify publish failed",
			logger.Int64("application_id", decided.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "driver application decided",
		logger.Int64("application_id", decided.ID),
		logger.String("status", string(decided.Status)))
	return decided, nil
}

func validateApplication(req *models.SubmitApplicationRequest) error {
	required := map[string]string{
		"fullname":      req.FullName,
		"vehicleType":   req.VehicleType,
		"vehiclePlate":  req.VehiclePlate,
		"licenseNumber": req.LicenseNumber,
		"licenseDocRef": req.LicenseDocRef,
		"idDocRef":      req.IDDocRef,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", models.ErrValidation, field)
		}
	}
	return nil
}

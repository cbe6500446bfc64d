package drivers

import (
	"context"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// DriverGW defines the interface for publishing driver verification events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ridelink/dispatch/services/drivers DriverGW
type DriverGW interface {
	PublishApplicationSubmitted(ctx context.Context, app *models.DriverApplication) error
	PublishApplicationDecided(ctx context.Context, app *models.DriverApplication) error
}

package gateway

import (
	"context"
	"encoding/json"

	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/models"
	natspkg "github.com/ridelink/dispatch/internal/pkg/nats"
	"github.com/ridelink/dispatch/services/drivers"
)

// natsPublisher is the slice of the NATS client the gateway publishes through
type natsPublisher interface {
	Publish(subject string, data []byte) error
}

var _ natsPublisher = (*natspkg.Client)(nil)

// DriverGW handles NATS publishing for driver verification events
type DriverGW struct {
	natsClient natsPublisher
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(client *natspkg.Client) drivers.DriverGW {
	return &DriverGW{
		natsClient: client,
	}
}

// PublishApplicationSubmitted announces a new application to the review queue
func (g *DriverGW) PublishApplicationSubmitted(ctx context.Context, app *models.DriverApplication) error {
	data, err := json.Marshal(app)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectApplicationSubmitted, data)
}

// PublishApplicationDecided notifies the applicant of the verdict
func (g *DriverGW) PublishApplicationDecided(ctx context.Context, app *models.DriverApplication) error {
	event := models.ApplicationDecidedEvent{
		Type:          models.EventTypeApplicationDecided,
		ApplicationID: app.ID,
		UserID:        app.UserID.String(),
		Status:        app.Status,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectApplicationDecided, data)
}

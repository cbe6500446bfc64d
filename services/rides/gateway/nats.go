package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/models"
	natspkg "github.com/ridelink/dispatch/internal/pkg/nats"
	"github.com/ridelink/dispatch/services/rides"
)

// natsPublisher is the slice of the NATS client the gateway publishes through
type natsPublisher interface {
	Publish(subject string, data []byte) error
}

var _ natsPublisher = (*natspkg.Client)(nil)

// RideGW handles NATS publishing for ride events
type RideGW struct {
	natsClient natsPublisher
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: client,
	}
}

// PublishRideRequested publishes a new ride request for driver fan-out
func (g *RideGW) PublishRideRequested(ctx context.Context, ride *models.RideRequest) error {
	event := models.NewRideRequestEvent{
		Type:        models.EventTypeNewRideRequest,
		RideID:      ride.ID,
		PassengerID: ride.PassengerID.String(),
		Pickup:      ride.Pickup,
		Dropoff:     ride.Dropoff,
		Fare:        ride.Fare,
		DistanceKm:  ride.DistanceKm,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRideRequested, data)
}

// PublishRideAccepted publishes a driver claim so both parties get notified
func (g *RideGW) PublishRideAccepted(ctx context.Context, ride *models.RideRequest) error {
	event := models.RideAcceptedEvent{
		Type:        models.EventTypeRideAccepted,
		RideID:      ride.ID,
		PassengerID: ride.PassengerID.String(),
	}
	if ride.DriverID != nil {
		event.DriverID = ride.DriverID.String()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRideAccepted, data)
}

// PublishRideStatusChanged publishes a terminal status transition
func (g *RideGW) PublishRideStatusChanged(ctx context.Context, ride *models.RideRequest, actorID uuid.UUID) error {
	event := models.StatusUpdateEvent{
		Type:        models.EventTypeStatusUpdate,
		RideID:      ride.ID,
		Status:      ride.Status,
		UpdaterID:   actorID.String(),
		PassengerID: ride.PassengerID.String(),
	}
	if ride.DriverID != nil {
		event.DriverID = ride.DriverID.String()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRideStatus, data)
}

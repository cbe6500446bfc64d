package handler

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	natspkg "github.com/ridelink/dispatch/internal/pkg/nats"
	"github.com/ridelink/dispatch/internal/pkg/websocket"
)

// NATSHandler consumes dispatch events and turns them into WebSocket
// deliveries. Fan-out is addressed: ride requests go to the driver pool,
// everything else goes only to the users the event concerns.
type NATSHandler struct {
	manager    *websocket.Manager
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNATSHandler creates a new realtime NATS consumer handler
func NewNATSHandler(manager *websocket.Manager, natsClient *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		manager:    manager,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to all dispatch subjects
func (h *NATSHandler) InitNATSConsumers() error {
	subjects := map[string]nats.MsgHandler{
		constants.SubjectRideRequested:      h.handleRideRequested,
		constants.SubjectRideAccepted:       h.handleRideAccepted,
		constants.SubjectRideStatus:         h.handleRideStatus,
		constants.SubjectApplicationDecided: h.handleApplicationDecided,
	}

	for subject, msgHandler := range subjects {
		sub, err := h.natsClient.Subscribe(subject, msgHandler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Realtime NATS consumers initialized",
		logger.Int("subjects", len(h.subs)))
	return nil
}

// Close drains all subscriptions
func (h *NATSHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}

// handleRideRequested fans a new ride request out to every connected driver.
// The requesting passenger is excluded; they already hold the synchronous
// response.
func (h *NATSHandler) handleRideRequested(msg *nats.Msg) {
	var event models.NewRideRequestEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to unmarshal ride requested event", logger.Err(err))
		return
	}

	h.manager.BroadcastToRole(models.RoleDriver, event, event.PassengerID)
	logger.Debug("ride request fanned out to drivers",
		logger.Int64("ride_id", event.RideID))
}

// handleRideAccepted notifies both parties of the claim
func (h *NATSHandler) handleRideAccepted(msg *nats.Msg) {
	var event models.RideAcceptedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to unmarshal ride accepted event", logger.Err(err))
		return
	}

	h.manager.NotifyUsers([]string{event.PassengerID, event.DriverID}, event)
}

// handleRideStatus notifies both parties of a terminal transition
func (h *NATSHandler) handleRideStatus(msg *nats.Msg) {
	var event models.StatusUpdateEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to unmarshal ride status event", logger.Err(err))
		return
	}

	h.manager.NotifyUsers([]string{event.PassengerID, event.DriverID}, event)
}

// handleApplicationDecided notifies the applicant of the verdict
func (h *NATSHandler) handleApplicationDecided(msg *nats.Msg) {
	var event models.ApplicationDecidedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to unmarshal application decided event", logger.Err(err))
		return
	}

	h.manager.NotifyClient(event.UserID, event)
}

package handler

import (
	"context"
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/pkg/websocket"
	"github.com/ridelink/dispatch/services/realtime"
)

// WebSocketHandler owns the realtime endpoint: it registers authenticated
// peers with the connection manager and runs their inbound read loop.
type WebSocketHandler struct {
	manager    *websocket.Manager
	locationUC realtime.LocationUC
	cfg        *models.Config
}

// NewWebSocketHandler creates a new realtime WebSocket handler
func NewWebSocketHandler(manager *websocket.Manager, locationUC realtime.LocationUC, cfg *models.Config) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		locationUC: locationUC,
		cfg:        cfg,
	}
}

// HandleWebSocket upgrades the connection and serves it until the peer leaves
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// handleClient runs one peer's session. Identity and role were bound at
// registration from the verified token; inbound messages never carry them.
func (h *WebSocketHandler) handleClient(client *websocket.Client) error {
	h.manager.AddClient(client)
	logger.Info("WebSocket peer connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	defer func() {
		h.manager.RemoveClient(client)
		if client.Role == models.RoleDriver {
			if err := h.locationUC.ClearDriverPresence(context.Background(), client.UserID); err != nil {
				logger.Warn("failed to clear driver presence on disconnect",
					logger.String("driver_id", client.UserID),
					logger.Err(err))
			}
		}
		logger.Info("WebSocket peer disconnected",
			logger.String("user_id", client.UserID))
	}()

	for {
		var msg models.WSMessage
		if err := client.Conn.ReadJSON(&msg); err != nil {
			return nil // peer closed or errored out
		}

		if err := h.routeMessage(client, msg); err != nil {
			logger.Warn("failed to handle WebSocket message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *WebSocketHandler) routeMessage(client *websocket.Client, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client, constants.EventPong, map[string]string{"status": "ok"})
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)
	default:
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event type: "+msg.Event)
	}
}

// handleLocationUpdate records a driver position beacon
func (h *WebSocketHandler) handleLocationUpdate(client *websocket.Client, data json.RawMessage) error {
	if client.Role != models.RoleDriver {
		return h.manager.SendErrorMessage(client, constants.ErrorUnauthorized, "Only drivers publish location updates")
	}

	var location models.Location
	if err := json.Unmarshal(data, &location); err != nil {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid location payload")
	}

	if err := h.locationUC.UpdateDriverLocation(context.Background(), client.UserID, location); err != nil {
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidLocation, err.Error())
		return err
	}
	return nil
}

package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// Client represents a registered WebSocket peer. Identity and role are bound
// at handshake time from the verified token.
type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn

	// serializes writes; gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

// Manager owns the set of live WebSocket connections. It is the single
// authority for registration, removal, and fan-out; all access to the peer
// set is serialized through its lock.
type Manager struct {
	sync.RWMutex
	clients      map[string]*Client
	cfg          models.JWTConfig
	writeTimeout time.Duration
	upgrader     websocket.Upgrader
}

// NewManager creates a new WebSocket connection manager
func NewManager(jwtConfig models.JWTConfig, writeTimeout time.Duration) *Manager {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Manager{
		clients:      make(map[string]*Client),
		cfg:          jwtConfig,
		writeTimeout: writeTimeout,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket connection,
// then hands it to the supplied per-client handler
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	return handleClient(client)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	authHeader := c.Request().Header.Get("Authorization")
	token := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	} else {
		// Browser WebSocket clients cannot set headers
		token = c.QueryParam("token")
	}

	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := m.validateToken(token)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &Client{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient registers a client with the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient unregisters a client. A stale entry belonging to a newer
// connection for the same user is left untouched.
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	if current, ok := m.clients[client.UserID]; ok && current == client {
		delete(m.clients, client.UserID)
	}
}

// GetClient returns a registered client by user id
func (m *Manager) GetClient(userID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// ClientCount returns the number of currently registered clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// snapshot returns a stable copy of the current peer set. Sends happen
// outside the lock so a slow peer never blocks registration.
func (m *Manager) snapshot() []*Client {
	m.RLock()
	defer m.RUnlock()
	peers := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		peers = append(peers, client)
	}
	return peers
}

// Broadcast delivers payload to every registered client except excludeUserID.
// Delivery is best effort: a peer that fails or times out is unregistered and
// iteration continues over the remaining peers.
func (m *Manager) Broadcast(payload interface{}, excludeUserID string) {
	for _, client := range m.snapshot() {
		if client.UserID == excludeUserID {
			continue
		}
		m.deliver(client, payload)
	}
}

// BroadcastToRole delivers payload to every registered client with the given
// role, except excludeUserID
func (m *Manager) BroadcastToRole(role string, payload interface{}, excludeUserID string) {
	for _, client := range m.snapshot() {
		if client.Role != role || client.UserID == excludeUserID {
			continue
		}
		m.deliver(client, payload)
	}
}

// NotifyClient delivers payload to a single user if connected
func (m *Manager) NotifyClient(userID string, payload interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}
	m.deliver(client, payload)
}

// NotifyUsers delivers payload to each of the given users that is connected
func (m *Manager) NotifyUsers(userIDs []string, payload interface{}) {
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		m.NotifyClient(id, payload)
	}
}

// deliver writes payload to one peer. A failed send never surfaces to the
// caller; the peer is treated as dead and unregistered.
func (m *Manager) deliver(client *Client, payload interface{}) {
	if err := m.writeJSON(client, payload); err != nil {
		logger.Warn("Dropping unresponsive WebSocket peer",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		m.RemoveClient(client)
		_ = client.Conn.Close()
	}
}

// writeJSON performs a single bounded write on the client's connection
func (m *Manager) writeJSON(client *Client, payload interface{}) error {
	client.writeMu.Lock()
	defer client.writeMu.Unlock()

	if err := client.Conn.SetWriteDeadline(time.Now().Add(m.writeTimeout)); err != nil {
		return err
	}
	return client.Conn.WriteJSON(payload)
}

// SendMessage sends an enveloped event message to a single client
func (m *Manager) SendMessage(client *Client, event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return m.writeJSON(client, models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a single client
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return m.writeJSON(client, models.WSErrorMessage{
		Type:    "ERROR",
		Code:    code,
		Message: message,
	})
}

package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-ws"

func testToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := models.WebSocketClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// testServer runs a manager behind a real echo endpoint and reports
// registered server-side clients on a channel.
func testServer(t *testing.T) (*Manager, *httptest.Server, chan *Client) {
	t.Helper()

	manager := NewManager(models.JWTConfig{Secret: testSecret}, 500*time.Millisecond)
	registered := make(chan *Client, 8)

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return manager.HandleConnection(c, func(client *Client) error {
			manager.AddClient(client)
			defer manager.RemoveClient(client)
			registered <- client

			for {
				if _, _, err := client.Conn.ReadMessage(); err != nil {
					return nil
				}
			}
		})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return manager, srv, registered
}

func dial(t *testing.T, srv *httptest.Server, token string) *gorilla.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{"Authorization": []string{"Bearer " + token}}
	conn, resp, err := gorilla.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *gorilla.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(msg, &payload))
	return payload
}

func assertNoEvent(t *testing.T, conn *gorilla.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestBroadcast_AllPeersReceive(t *testing.T) {
	manager, srv, registered := testServer(t)

	connA := dial(t, srv, testToken(t, "user-a", "driver"))
	connB := dial(t, srv, testToken(t, "user-b", "driver"))
	connC := dial(t, srv, testToken(t, "user-c", "passenger"))

	for i := 0; i < 3; i++ {
		select {
		case <-registered:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for client registration")
		}
	}
	require.Equal(t, 3, manager.ClientCount())

	manager.Broadcast(models.NewRideRequestEvent{
		Type:   models.EventTypeNewRideRequest,
		RideID: 42,
	}, "")

	for _, conn := range []*gorilla.Conn{connA, connB, connC} {
		event := readEvent(t, conn)
		assert.Equal(t, models.EventTypeNewRideRequest, event["type"])
		assert.Equal(t, float64(42), event["rideId"])
	}
}

func TestBroadcast_FailedPeerIsUnregistered(t *testing.T) {
	manager, srv, registered := testServer(t)

	connA := dial(t, srv, testToken(t, "user-a", "driver"))
	_ = dial(t, srv, testToken(t, "user-b", "driver"))
	connC := dial(t, srv, testToken(t, "user-c", "passenger"))

	clients := make(map[string]*Client)
	for i := 0; i < 3; i++ {
		select {
		case client := <-registered:
			clients[client.UserID] = client
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for client registration")
		}
	}

	// Kill B's server-side connection so the next write to it fails
	require.NoError(t, clients["user-b"].Conn.Close())

	manager.Broadcast(models.StatusUpdateEvent{
		Type:   models.EventTypeStatusUpdate,
		RideID: 7,
		Status: models.RideStatusCancelled,
	}, "")

	// A and C each receive the event exactly once
	for _, conn := range []*gorilla.Conn{connA, connC} {
		event := readEvent(t, conn)
		assert.Equal(t, models.EventTypeStatusUpdate, event["type"])
	}

	// B has been dropped from the registry
	_, exists := manager.GetClient("user-b")
	assert.False(t, exists)
}

func TestBroadcastToRole_FiltersByRole(t *testing.T) {
	manager, srv, registered := testServer(t)

	driverConn := dial(t, srv, testToken(t, "driver-1", "driver"))
	passengerConn := dial(t, srv, testToken(t, "passenger-1", "passenger"))

	for i := 0; i < 2; i++ {
		select {
		case <-registered:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for client registration")
		}
	}

	manager.BroadcastToRole("driver", models.NewRideRequestEvent{
		Type:   models.EventTypeNewRideRequest,
		RideID: 1,
	}, "")

	event := readEvent(t, driverConn)
	assert.Equal(t, models.EventTypeNewRideRequest, event["type"])

	assertNoEvent(t, passengerConn)
}

func TestBroadcast_ExcludesSender(t *testing.T) {
	manager, srv, registered := testServer(t)

	connA := dial(t, srv, testToken(t, "user-a", "driver"))
	connB := dial(t, srv, testToken(t, "user-b", "driver"))

	for i := 0; i < 2; i++ {
		select {
		case <-registered:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for client registration")
		}
	}

	manager.Broadcast(models.RideAcceptedEvent{
		Type:   models.EventTypeRideAccepted,
		RideID: 3,
	}, "user-a")

	event := readEvent(t, connB)
	assert.Equal(t, models.EventTypeRideAccepted, event["type"])

	assertNoEvent(t, connA)
}

func TestNotifyClient_UnknownUserIsNoop(t *testing.T) {
	manager := NewManager(models.JWTConfig{Secret: testSecret}, time.Second)
	manager.NotifyClient("nobody", models.RideAcceptedEvent{Type: models.EventTypeRideAccepted})
}

func TestHandleConnection_RejectsMissingToken(t *testing.T) {
	_, srv, _ := testServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := gorilla.DefaultDialer.Dial(url, nil)
	if conn != nil {
		conn.Close()
	}
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAddRemoveClient(t *testing.T) {
	manager := NewManager(models.JWTConfig{Secret: testSecret}, time.Second)

	first := &Client{UserID: "user-1", Role: "driver"}
	manager.AddClient(first)
	assert.Equal(t, 1, manager.ClientCount())

	// A reconnect replaces the old entry; removing the stale one must not
	// evict the new connection
	second := &Client{UserID: "user-1", Role: "driver"}
	manager.AddClient(second)
	manager.RemoveClient(first)

	got, exists := manager.GetClient("user-1")
	require.True(t, exists)
	assert.Same(t, second, got)

	manager.RemoveClient(second)
	assert.Equal(t, 0, manager.ClientCount())
}

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNATSClient captures published messages for inspection
type mockNATSClient struct {
	publishedMessages map[string][]byte
	publishError      error
}

func newMockNATSClient() *mockNATSClient {
	return &mockNATSClient{
		publishedMessages: make(map[string][]byte),
	}
}

func (m *mockNATSClient) Publish(subject string, data []byte) error {
	if m.publishError != nil {
		return m.publishError
	}
	m.publishedMessages[subject] = data
	return nil
}

func (m *mockNATSClient) publishedMessage(subject string) ([]byte, bool) {
	data, exists := m.publishedMessages[subject]
	return data, exists
}

func testApplication() *models.DriverApplication {
	return &models.DriverApplication{
		ID:            11,
		UserID:        uuid.MustParse("3f6c1b54-90d8-4e5a-8e2f-6c7d5a4b3e2f"),
		FullName:      "Sita Sharma",
		VehicleType:   "motorbike",
		VehiclePlate:  "BA 2 PA 4455",
		LicenseNumber: "04-06-00123456",
		LicenseDocRef: "doc://license/abc",
		IDDocRef:      "doc://id/def",
		Status:        models.ApplicationStatusPending,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestPublishApplicationSubmitted_Success(t *testing.T) {
	mockClient := newMockNATSClient()
	gw := &DriverGW{natsClient: mockClient}
	app := testApplication()

	err := gw.PublishApplicationSubmitted(context.Background(), app)
	require.NoError(t, err)

	data, exists := mockClient.publishedMessage(constants.SubjectApplicationSubmitted)
	require.True(t, exists, "message should be published to the application submitted subject")

	var received models.DriverApplication
	require.NoError(t, json.Unmarshal(data, &received))
	assert.Equal(t, app.ID, received.ID)
	assert.Equal(t, app.UserID, received.UserID)
	assert.Equal(t, app.VehiclePlate, received.VehiclePlate)
	assert.Equal(t, models.ApplicationStatusPending, received.Status)
}

func TestPublishApplicationSubmitted_Error(t *testing.T) {
	mockClient := newMockNATSClient()
	mockClient.publishError = errors.New("nats: connection closed")
	gw := &DriverGW{natsClient: mockClient}

	err := gw.PublishApplicationSubmitted(context.Background(), testApplication())
	require.Error(t, err)
	assert.Equal(t, mockClient.publishError, err)
}

func TestPublishApplicationDecided_Success(t *testing.T) {
	mockClient := newMockNATSClient()
	gw := &DriverGW{natsClient: mockClient}

	app := testApplication()
	app.Status = models.ApplicationStatusApproved

	require.NoError(t, gw.PublishApplicationDecided(context.Background(), app))

	data, exists := mockClient.publishedMessage(constants.SubjectApplicationDecided)
	require.True(t, exists, "message should be published to the application decided subject")

	var event models.ApplicationDecidedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, models.EventTypeApplicationDecided, event.Type)
	assert.Equal(t, app.ID, event.ApplicationID)
	assert.Equal(t, app.UserID.String(), event.UserID)
	assert.Equal(t, models.ApplicationStatusApproved, event.Status)
}

func TestPublishApplicationDecided_WireKeys(t *testing.T) {
	mockClient := newMockNATSClient()
	gw := &DriverGW{natsClient: mockClient}

	app := testApplication()
	app.Status = models.ApplicationStatusRejected

	require.NoError(t, gw.PublishApplicationDecided(context.Background(), app))

	data, exists := mockClient.publishedMessage(constants.SubjectApplicationDecided)
	require.True(t, exists)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "APPLICATION_DECIDED", raw["type"])
	assert.Equal(t, float64(11), raw["applicationId"])
	assert.Equal(t, "rejected", raw["status"])
	assert.Contains(t, raw, "userId")
}

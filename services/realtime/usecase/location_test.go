package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/realtime/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Realtime: models.RealtimeConfig{
			PresenceTTLSec:   90,
			GeohashPrecision: 7,
		},
	}
}

func TestUpdateDriverLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo)

	mockRepo.EXPECT().
		StoreDriverLocation(gomock.Any(), "driver-1", gomock.Any(), 90*time.Second).
		DoAndReturn(func(_ context.Context, _ string, loc models.Location, _ time.Duration) error {
			assert.Equal(t, 27.7172, loc.Latitude)
			assert.False(t, loc.Timestamp.IsZero())
			return nil
		})

	err := uc.UpdateDriverLocation(context.Background(), "driver-1", models.Location{
		Latitude:  27.7172,
		Longitude: 85.3240,
	})

	require.NoError(t, err)
}

func TestUpdateDriverLocation_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo)

	err := uc.UpdateDriverLocation(context.Background(), "driver-1", models.Location{
		Latitude:  95,
		Longitude: 85.3240,
	})

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestClearDriverPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo)

	mockRepo.EXPECT().RemoveDriverLocation(gomock.Any(), "driver-1").Return(nil)

	require.NoError(t, uc.ClearDriverPresence(context.Background(), "driver-1"))
}

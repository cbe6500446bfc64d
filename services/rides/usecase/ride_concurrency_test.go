package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRideRepo is an in-memory RideRepo with the same claim semantics the
// SQL repository enforces: the accept succeeds only while the ride is still
// in the requested state, checked and applied under one lock.
type memoryRideRepo struct {
	mu     sync.Mutex
	nextID int64
	rides  map[int64]*models.RideRequest
}

func newMemoryRideRepo() *memoryRideRepo {
	return &memoryRideRepo{rides: make(map[int64]*models.RideRequest)}
}

func (r *memoryRideRepo) CreateRideRequest(_ context.Context, ride *models.RideRequest) (*models.RideRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ride.ID = r.nextID
	stored := *ride
	r.rides[ride.ID] = &stored
	return ride, nil
}

func (r *memoryRideRepo) GetRideRequest(_ context.Context, rideID int64) (*models.RideRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ride, ok := r.rides[rideID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *ride
	return &copied, nil
}

func (r *memoryRideRepo) ListRideRequestsByPassenger(_ context.Context, _ uuid.UUID) ([]*models.RideRequest, error) {
	return nil, nil
}

func (r *memoryRideRepo) ListRideRequestsByDriver(_ context.Context, _ uuid.UUID) ([]*models.RideRequest, error) {
	return nil, nil
}

func (r *memoryRideRepo) AcceptRideRequest(_ context.Context, rideID int64, driverID uuid.UUID) (*models.RideRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ride, ok := r.rides[rideID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if ride.Status != models.RideStatusRequested {
		return nil, fmt.Errorf("%w: ride %d is %s", models.ErrConflict, rideID, ride.Status)
	}
	ride.Status = models.RideStatusAccepted
	ride.DriverID = &driverID
	copied := *ride
	return &copied, nil
}

func (r *memoryRideRepo) UpdateRideStatus(_ context.Context, rideID int64, status models.RideStatus) (*models.RideRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ride, ok := r.rides[rideID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if ride.Status.IsTerminal() {
		return nil, models.ErrInvalidTransition
	}
	ride.Status = status
	copied := *ride
	return &copied, nil
}

type noopRideGW struct{}

func (noopRideGW) PublishRideRequested(context.Context, *models.RideRequest) error {
	return nil
}

func (noopRideGW) PublishRideAccepted(context.Context, *models.RideRequest) error {
	return nil
}

func (noopRideGW) PublishRideStatusChanged(context.Context, *models.RideRequest, uuid.UUID) error {
	return nil
}

func TestAcceptRide_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	repo := newMemoryRideRepo()
	uc := NewRideUC(testConfig(), repo, noopRideGW{})

	resp, err := uc.RequestRide(context.Background(), uuid.New(), &models.CreateRideRequest{
		PickupLat: 27.7172, PickupLng: 85.3240, DropoffLat: 27.6588, DropoffLng: 85.3247,
	})
	require.NoError(t, err)

	const drivers = 32
	var wg sync.WaitGroup
	winners := make(chan uuid.UUID, drivers)
	conflicts := make(chan error, drivers)

	start := make(chan struct{})
	for i := 0; i < drivers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			driverID := uuid.New()
			<-start
			ride, err := uc.AcceptRide(context.Background(), resp.RideID, driverID)
			if err != nil {
				conflicts <- err
				return
			}
			assert.Equal(t, driverID, *ride.DriverID)
			winners <- driverID
		}()
	}
	close(start)
	wg.Wait()
	close(winners)
	close(conflicts)

	assert.Len(t, winners, 1)
	assert.Len(t, conflicts, drivers-1)
	for err := range conflicts {
		assert.ErrorIs(t, err, models.ErrConflict)
	}

	// The persisted ride carries the winner's binding.
	winner := <-winners
	ride, err := uc.GetRide(context.Background(), resp.RideID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	assert.Equal(t, winner, *ride.DriverID)
}

package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*RideRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &RideRepo{cfg: &models.Config{}, db: sqlxDB}, mock
}

func rideRows(id int64, passengerID uuid.UUID, driverID *uuid.UUID, status models.RideStatus) *sqlmock.Rows {
	now := time.Now().UTC()
	var driver interface{}
	if driverID != nil {
		driver = driverID.String()
	}
	return sqlmock.NewRows([]string{
		"id", "passenger_id", "driver_id",
		"pickup_lat", "pickup_lng", "dropoff_lat", "dropoff_lng",
		"distance_km", "fare", "status", "created_at", "updated_at",
	}).AddRow(id, passengerID, driver, 27.7172, 85.3240, 27.6588, 85.3247, 9.7, 632, status, now, now)
}

func TestCreateRideRequest(t *testing.T) {
	repo, mock := newMockRepo(t)

	passengerID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ride_requests")).
		WithArgs(passengerID, 27.7172, 85.3240, 27.6588, 85.3247, 9.7, 632,
			models.RideStatusRequested, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	ride, err := repo.CreateRideRequest(context.Background(), &models.RideRequest{
		PassengerID: passengerID,
		Pickup:      models.Coordinate{Latitude: 27.7172, Longitude: 85.3240},
		Dropoff:     models.Coordinate{Latitude: 27.6588, Longitude: 85.3247},
		DistanceKm:  9.7,
		Fare:        632,
		Status:      models.RideStatusRequested,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), ride.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideRequest_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT(.+)FROM ride_requests WHERE id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	ride, err := repo.GetRideRequest(context.Background(), 404)

	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRideRequest_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	passengerID := uuid.New()
	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(driverID, models.RideStatusAccepted, sqlmock.AnyArg(), int64(42), models.RideStatusRequested).
		WillReturnRows(rideRows(42, passengerID, &driverID, models.RideStatusAccepted))

	ride, err := repo.AcceptRideRequest(context.Background(), 42, driverID)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRideRequest_AlreadyClaimed(t *testing.T) {
	repo, mock := newMockRepo(t)

	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(driverID, models.RideStatusAccepted, sqlmock.AnyArg(), int64(42), models.RideStatusRequested).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM ride_requests WHERE id")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("accepted"))

	ride, err := repo.AcceptRideRequest(context.Background(), 42, driverID)

	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRideRequest_RideMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(driverID, models.RideStatusAccepted, sqlmock.AnyArg(), int64(404), models.RideStatusRequested).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM ride_requests WHERE id")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	ride, err := repo.AcceptRideRequest(context.Background(), 404, driverID)

	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRideStatus_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	passengerID := uuid.New()
	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(models.RideStatusCompleted, sqlmock.AnyArg(), int64(9),
			models.RideStatusRequested, models.RideStatusAccepted).
		WillReturnRows(rideRows(9, passengerID, &driverID, models.RideStatusCompleted))

	ride, err := repo.UpdateRideStatus(context.Background(), 9, models.RideStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, ride.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRideStatus_AlreadyTerminal(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(models.RideStatusCompleted, sqlmock.AnyArg(), int64(9),
			models.RideStatusRequested, models.RideStatusAccepted).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM ride_requests WHERE id")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

	ride, err := repo.UpdateRideStatus(context.Background(), 9, models.RideStatusCompleted)

	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRideRequestsByPassenger(t *testing.T) {
	repo, mock := newMockRepo(t)

	passengerID := uuid.New()
	rows := rideRows(2, passengerID, nil, models.RideStatusRequested)
	now := time.Now().UTC()
	rows.AddRow(int64(1), passengerID, nil, 27.70, 85.30, 27.65, 85.32, 8.1, 540,
		models.RideStatusCancelled, now, now)

	mock.ExpectQuery("SELECT(.+)FROM ride_requests WHERE passenger_id").
		WithArgs(passengerID).
		WillReturnRows(rows)

	rides, err := repo.ListRideRequestsByPassenger(context.Background(), passengerID)

	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, int64(2), rides[0].ID)
	assert.Nil(t, rides[0].DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

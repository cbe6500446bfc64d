package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitRequest() *models.SubmitApplicationRequest {
	return &models.SubmitApplicationRequest{
		FullName:      "Sita Sharma",
		VehicleType:   "motorbike",
		VehiclePlate:  "BA 12 PA 3456",
		LicenseNumber: "04-06-00123456",
		LicenseDocRef: "docs/license-5f2a.png",
		IDDocRef:      "docs/id-5f2a.png",
	}
}

func TestSubmitApplication_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	userID := uuid.New()

	mockRepo.EXPECT().HasPendingApplication(gomock.Any(), userID).Return(false, nil)
	mockRepo.EXPECT().
		CreateApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app *models.DriverApplication) (*models.DriverApplication, error) {
			assert.Equal(t, userID, app.UserID)
			assert.Equal(t, models.ApplicationStatusPending, app.Status)
			app.ID = 11
			return app, nil
		})
	mockGW.EXPECT().PublishApplicationSubmitted(gomock.Any(), gomock.Any()).Return(nil)

	app, err := uc.SubmitApplication(context.Background(), userID, validSubmitRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(11), app.ID)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
}

func TestSubmitApplication_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	req := validSubmitRequest()
	req.LicenseNumber = "   "

	app, err := uc.SubmitApplication(context.Background(), uuid.New(), req)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSubmitApplication_DuplicatePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	userID := uuid.New()
	mockRepo.EXPECT().HasPendingApplication(gomock.Any(), userID).Return(true, nil)

	app, err := uc.SubmitApplication(context.Background(), userID, validSubmitRequest())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestDecideApplication_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	decided := &models.DriverApplication{
		ID:     11,
		UserID: uuid.New(),
		Status: models.ApplicationStatusApproved,
	}
	mockRepo.EXPECT().
		DecideApplication(gomock.Any(), int64(11), models.ApplicationStatusApproved).
		Return(decided, nil)
	mockGW.EXPECT().PublishApplicationDecided(gomock.Any(), decided).Return(nil)

	app, err := uc.DecideApplication(context.Background(), 11, models.VerdictApproved)

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, app.Status)
}

func TestDecideApplication_UnknownVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	app, err := uc.DecideApplication(context.Background(), 11, "maybe")

	assert.Nil(t, app)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDecideApplication_AlreadyDecided(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		DecideApplication(gomock.Any(), int64(11), models.ApplicationStatusRejected).
		Return(nil, models.ErrInvalidTransition)

	app, err := uc.DecideApplication(context.Background(), 11, models.VerdictRejected)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestDecideApplication_PublishFailureDoesNotFailDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	decided := &models.DriverApplication{ID: 11, Status: models.ApplicationStatusRejected}
	mockRepo.EXPECT().
		DecideApplication(gomock.Any(), int64(11), models.ApplicationStatusRejected).
		Return(decided, nil)
	mockGW.EXPECT().
		PublishApplicationDecided(gomock.Any(), decided).
		Return(errors.New("nats is down"))

	app, err := uc.DecideApplication(context.Background(), 11, models.VerdictRejected)

	require.NoError(t, err)
	assert.Equal(t, int64(11), app.ID)
}

func TestListPendingApplications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		ListApplicationsByStatus(gomock.Any(), models.ApplicationStatusPending).
		Return([]*models.DriverApplication{{ID: 1}, {ID: 2}}, nil)

	apps, err := uc.ListPendingApplications(context.Background())

	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestGetApplication_OwnerCanRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	ownerID := uuid.New()
	mockRepo.EXPECT().
		GetApplication(gomock.Any(), int64(11)).
		Return(&models.DriverApplication{ID: 11, UserID: ownerID, Status: models.ApplicationStatusPending}, nil)

	app, err := uc.GetApplication(context.Background(), 11, ownerID, models.RolePassenger)

	require.NoError(t, err)
	assert.Equal(t, int64(11), app.ID)
}

func TestGetApplication_ForeignApplicationReadsAsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		GetApplication(gomock.Any(), int64(11)).
		Return(&models.DriverApplication{ID: 11, UserID: uuid.New()}, nil)

	app, err := uc.GetApplication(context.Background(), 11, uuid.New(), models.RolePassenger)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetApplication_AdminCanReadAny(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		GetApplication(gomock.Any(), int64(11)).
		Return(&models.DriverApplication{ID: 11, UserID: uuid.New()}, nil)

	app, err := uc.GetApplication(context.Background(), 11, uuid.New(), models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, int64(11), app.ID)
}

func TestGetApplication_MissingPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		GetApplication(gomock.Any(), int64(99)).
		Return(nil, models.ErrNotFound)

	app, err := uc.GetApplication(context.Background(), 99, uuid.New(), models.RolePassenger)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

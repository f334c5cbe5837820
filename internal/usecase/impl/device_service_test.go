package impl

import (
	"context"
	"testing"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	mockRepo "localharvest/internal/mocks/repository"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: newDiscardLogger()})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, "ios", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "old-token", DeviceID: "device-123", Platform: "android"}
	updatedDevice := &entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "new-fcm-token", DeviceID: "device-123", Platform: "android"}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{name: "nil info"},
		{name: "missing token", info: &usecase.DeviceInfo{DeviceID: "d", Platform: "ios"}},
		{name: "unknown platform", info: &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-token"))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-token")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("device of another user", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-token")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)
	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
}

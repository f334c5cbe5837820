package impl

import (
	"context"
	"fmt"
	"testing"

	"localharvest/internal/domain/entity"
	"localharvest/internal/domain/service"
	mockRepo "localharvest/internal/mocks/repository"
	mockService "localharvest/internal/mocks/service"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service  usecase.NotificationUsecase
	devices  *mockRepo.MockDeviceRepository
	notifier *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	devices := mockRepo.NewMockDeviceRepository(t)
	notifier := mockService.NewMockNotificationService(t)

	return notificationServiceFixtures{
		service: NewNotificationService(NotificationServiceParams{
			DeviceRepo:      devices,
			NotificationSvc: notifier,
			Logger:          newDiscardLogger(),
		}),
		devices:  devices,
		notifier: notifier,
	}
}

func newDevices(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	return devices
}

func TestNotificationService_HandleEvent_OrderPlacedGoesToSeller(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	event := &service.MarketplaceEvent{
		Type:     service.EventOrderPlaced,
		OrderID:  uuid.NewString(),
		OrderRef: "ORD-000001",
		BuyerID:  uuid.NewString(),
		SellerID: sellerID.String(),
		Total:    "12.00",
	}

	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, sellerID).Return(newDevices(sellerID, 2), nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, mock.MatchedBy(func(m service.PushMessage) bool {
			return m.Title == "New order received" && m.Data["order_ref"] == "ORD-000001"
		})).
		Return(&service.BatchResult{SuccessCount: 2}, nil)

	require.NoError(t, fx.service.HandleEvent(ctx, event))
}

func TestNotificationService_HandleEvent_BatchesAndDeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	event := &service.MarketplaceEvent{
		Type:        service.EventShipmentStatusChanged,
		OrderRef:    "ORD-000002",
		ShipmentID:  uuid.NewString(),
		ShipmentRef: "SHIP-000002",
		BuyerID:     buyerID.String(),
		SellerID:    uuid.NewString(),
		Status:      string(entity.ShipmentStatusOutForDelivery),
	}

	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, buyerID).Return(newDevices(buyerID, service.MaxPushBatchSize+1), nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxPushBatchSize }), mock.Anything).
		Return(&service.BatchResult{SuccessCount: 499, FailureCount: 1, InvalidTokens: []string{"token-7"}}, nil).
		Once()
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{fmt.Sprintf("token-%d", service.MaxPushBatchSize)}, mock.MatchedBy(func(m service.PushMessage) bool {
			return m.Body == "Shipment SHIP-000002 is now out for delivery"
		})).
		Return(nil, errors.New("firebase unavailable")).
		Once()
	fx.devices.EXPECT().DeactivateByTokens(ctx, []string{"token-7"}).Return(int64(1), nil)

	require.NoError(t, fx.service.HandleEvent(ctx, event))
}

func TestNotificationService_HandleEvent_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	buyerID := uuid.New()

	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, buyerID).Return(nil, nil)

	err := fx.service.HandleEvent(ctx, &service.MarketplaceEvent{Type: service.EventOrderStatusChanged, BuyerID: buyerID.String()})
	require.NoError(t, err)
}

func TestNotificationService_HandleEvent_RepositoryFailureIsRetryable(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	buyerID := uuid.New()

	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, buyerID).Return(nil, errors.New("connection refused"))

	err := fx.service.HandleEvent(ctx, &service.MarketplaceEvent{Type: service.EventShipmentCreated, BuyerID: buyerID.String()})
	require.Error(t, err)
	assert.True(t, usecase.IsRetryable(err))
}

func TestNotificationService_HandleEvent_MalformedEventsAreNotRetryable(t *testing.T) {
	tests := []struct {
		name  string
		event *service.MarketplaceEvent
	}{
		{name: "nil event"},
		{name: "bad recipient", event: &service.MarketplaceEvent{Type: service.EventOrderStatusChanged, BuyerID: "not-a-uuid"}},
		{name: "unknown type", event: &service.MarketplaceEvent{Type: "order.refunded", BuyerID: uuid.NewString()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			err := fx.service.HandleEvent(context.Background(), tt.event)
			require.Error(t, err)
			assert.False(t, usecase.IsRetryable(err))
		})
	}
}

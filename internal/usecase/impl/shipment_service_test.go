package impl

import (
	"context"
	"testing"
	"time"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/domain/service"
	mockService "localharvest/internal/mocks/service"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

type shipmentServiceFixtures struct {
	txFixture
	qrService *mockService.MockQRCodeService
	publisher *mockService.MockEventPublisher
	service   usecase.ShipmentUsecase
}

func createTestShipmentService(t *testing.T) shipmentServiceFixtures {
	tx := newTxFixture(t)
	qrService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewShipmentService(ShipmentServiceParams{
		TxManager:    tx.txManager,
		ShipmentRepo: tx.shipmentRepo,
		OrderRepo:    tx.orderRepo,
		QRService:    qrService,
		Publisher:    publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*shipmentService).now = func() time.Time { return fixedNow }

	return shipmentServiceFixtures{txFixture: tx, qrService: qrService, publisher: publisher, service: svc}
}

func newTestOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:              uuid.New(),
		DisplayID:       "ORD-000005",
		BuyerID:         uuid.New(),
		SellerID:        uuid.New(),
		ShippingAddress: newTestAddress(),
		Status:          status,
	}
}

func TestShipmentService_CreateShipment(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()
	order := newTestOrder(entity.OrderStatusConfirmed)

	fx.expectTx()
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.shipmentRepo.EXPECT().FindByOrderID(ctx, order.ID).Return(nil, repository.ErrShipmentNotFound)
	fx.counterRepo.EXPECT().Next(ctx, repository.CounterShipment).Return(int64(3), nil)
	fx.shipmentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shipment")).Return(nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusShipped).Return(nil)
	fx.publisher.EXPECT().
		PublishMarketplaceEvent(ctx, mock.MatchedBy(func(e *service.MarketplaceEvent) bool {
			return e.Type == service.EventShipmentCreated && e.ShipmentRef == "SHIP-000003" && e.OrderRef == order.DisplayID
		})).
		Return(nil)

	shipment, err := fx.service.CreateShipment(ctx, order.SellerID, usecase.CreateShipmentInput{
		OrderID: order.ID,
		Carrier: " Farm Express ",
	})
	require.NoError(t, err)
	assert.Equal(t, "SHIP-000003", shipment.DisplayID)
	assert.Equal(t, "Ada Buyer", shipment.CustomerName)
	assert.Equal(t, order.ShippingAddress, shipment.Address)
	assert.Equal(t, entity.ShipmentStatusPending, shipment.Status)
	assert.Equal(t, "Farm Express", shipment.Carrier)
	assert.Equal(t, fixedNow.AddDate(0, 0, 3), shipment.ExpectedDeliveryDate)
}

func TestShipmentService_CreateShipment_FallsBackToBuyerName(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()
	order := newTestOrder(entity.OrderStatusDelivered)
	order.ShippingAddress.FullName = ""
	expected := fixedNow.Add(48 * time.Hour)

	fx.expectTx()
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.shipmentRepo.EXPECT().FindByOrderID(ctx, order.ID).Return(nil, repository.ErrShipmentNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, order.BuyerID).Return(&entity.User{ID: order.BuyerID, Name: "Ada Lovelace"}, nil)
	fx.counterRepo.EXPECT().Next(ctx, repository.CounterShipment).Return(int64(4), nil)
	fx.shipmentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shipment")).Return(nil)
	fx.publisher.EXPECT().PublishMarketplaceEvent(ctx, mock.Anything).Return(nil)

	shipment, err := fx.service.CreateShipment(ctx, order.SellerID, usecase.CreateShipmentInput{
		OrderID:              order.ID,
		ExpectedDeliveryDate: &expected,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", shipment.CustomerName)
	assert.Equal(t, expected, shipment.ExpectedDeliveryDate)
	fx.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestShipmentService_CreateShipment_Rejections(t *testing.T) {
	t.Run("not the seller", func(t *testing.T) {
		fx := createTestShipmentService(t)
		ctx := context.Background()
		order := newTestOrder(entity.OrderStatusPending)

		fx.expectTx()
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.CreateShipment(ctx, uuid.New(), usecase.CreateShipmentInput{OrderID: order.ID})
		assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
	})

	t.Run("already shipped", func(t *testing.T) {
		fx := createTestShipmentService(t)
		ctx := context.Background()
		order := newTestOrder(entity.OrderStatusShipped)

		fx.expectTx()
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.shipmentRepo.EXPECT().FindByOrderID(ctx, order.ID).Return(&entity.Shipment{ID: uuid.New()}, nil)

		_, err := fx.service.CreateShipment(ctx, order.SellerID, usecase.CreateShipmentInput{OrderID: order.ID})
		assert.ErrorIs(t, err, domainerrors.ErrShipmentAlreadyExists)
	})

	t.Run("unique index wins a race", func(t *testing.T) {
		fx := createTestShipmentService(t)
		ctx := context.Background()
		order := newTestOrder(entity.OrderStatusPending)

		fx.expectTx()
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.shipmentRepo.EXPECT().FindByOrderID(ctx, order.ID).Return(nil, repository.ErrShipmentNotFound)
		fx.counterRepo.EXPECT().Next(ctx, repository.CounterShipment).Return(int64(9), nil)
		fx.shipmentRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateShipment)

		_, err := fx.service.CreateShipment(ctx, order.SellerID, usecase.CreateShipmentInput{OrderID: order.ID})
		assert.ErrorIs(t, err, domainerrors.ErrShipmentAlreadyExists)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestShipmentService(t)
		ctx := context.Background()
		orderID := uuid.New()

		fx.expectTx()
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.CreateShipment(ctx, uuid.New(), usecase.CreateShipmentInput{OrderID: orderID})
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestShipmentService_UpdateShipmentStatus_DeliveredCascadesToOrder(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()
	order := newTestOrder(entity.OrderStatusShipped)
	shipment := &entity.Shipment{
		ID:       uuid.New(),
		OrderID:  order.ID,
		SellerID: order.SellerID,
		BuyerID:  order.BuyerID,
		Status:   entity.ShipmentStatusOutForDelivery,
	}
	tracking := "TRK-1"

	fx.expectTx()
	fx.shipmentRepo.EXPECT().FindByID(ctx, shipment.ID).Return(shipment, nil)
	fx.shipmentRepo.EXPECT().Update(ctx, shipment).Return(nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.publisher.EXPECT().
		PublishMarketplaceEvent(ctx, mock.MatchedBy(func(e *service.MarketplaceEvent) bool {
			return e.Type == service.EventShipmentStatusChanged && e.Status == "delivered"
		})).
		Return(nil)

	updated, err := fx.service.UpdateShipmentStatus(ctx, order.SellerID, shipment.ID, usecase.UpdateShipmentStatusInput{
		Status:         entity.ShipmentStatusDelivered,
		TrackingNumber: &tracking,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ActualDeliveryDate)
	assert.Equal(t, fixedNow, *updated.ActualDeliveryDate)
	assert.Equal(t, "TRK-1", updated.TrackingNumber)
}

func TestShipmentService_UpdateShipmentStatus_KeepsFirstDeliveryDate(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()
	order := newTestOrder(entity.OrderStatusDelivered)
	firstDelivery := fixedNow.Add(-72 * time.Hour)
	shipment := &entity.Shipment{
		ID:                 uuid.New(),
		OrderID:            order.ID,
		SellerID:           order.SellerID,
		Status:             entity.ShipmentStatusDelivered,
		ActualDeliveryDate: &firstDelivery,
		Carrier:            "Old Carrier",
	}

	fx.expectTx()
	fx.shipmentRepo.EXPECT().FindByID(ctx, shipment.ID).Return(shipment, nil)
	fx.shipmentRepo.EXPECT().Update(ctx, shipment).Return(nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.publisher.EXPECT().PublishMarketplaceEvent(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.UpdateShipmentStatus(ctx, order.SellerID, shipment.ID, usecase.UpdateShipmentStatusInput{
		Status: entity.ShipmentStatusDelivered,
	})
	require.NoError(t, err)
	assert.Equal(t, firstDelivery, *updated.ActualDeliveryDate)
	assert.Equal(t, "Old Carrier", updated.Carrier, "nil fields leave values untouched")
}

func TestShipmentService_UpdateShipmentStatus_Rejections(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		fx := createTestShipmentService(t)

		_, err := fx.service.UpdateShipmentStatus(context.Background(), uuid.New(), uuid.New(), usecase.UpdateShipmentStatusInput{Status: "teleported"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidShipmentStatus)
	})

	t.Run("other seller", func(t *testing.T) {
		fx := createTestShipmentService(t)
		ctx := context.Background()
		shipment := &entity.Shipment{ID: uuid.New(), SellerID: uuid.New()}

		fx.expectTx()
		fx.shipmentRepo.EXPECT().FindByID(ctx, shipment.ID).Return(shipment, nil)

		_, err := fx.service.UpdateShipmentStatus(ctx, uuid.New(), shipment.ID, usecase.UpdateShipmentStatusInput{Status: entity.ShipmentStatusInTransit})
		assert.ErrorIs(t, err, domainerrors.ErrShipmentOwnershipViolation)
	})
}

func TestShipmentService_TrackShipment_RedactsAddress(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()
	order := newTestOrder(entity.OrderStatusShipped)
	shipment := &entity.Shipment{
		ID:           uuid.New(),
		DisplayID:    "SHIP-000001",
		OrderID:      order.ID,
		CustomerName: "Ada Buyer",
		Address:      order.ShippingAddress,
		Status:       entity.ShipmentStatusInTransit,
		Carrier:      "Farm Express",
	}

	fx.shipmentRepo.EXPECT().FindByDisplayID(ctx, "SHIP-000001").Return(shipment, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	view, err := fx.service.TrackShipment(ctx, " SHIP-000001 ")
	require.NoError(t, err)
	assert.Equal(t, order.DisplayID, view.OrderRef)
	assert.Equal(t, "Springfield", view.DestinationCity)
	assert.Equal(t, entity.ShipmentStatusInTransit, view.Status)
}

func TestShipmentService_TrackShipment_NotFound(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()

	fx.shipmentRepo.EXPECT().FindByDisplayID(ctx, "SHIP-404").Return(nil, repository.ErrShipmentNotFound)

	_, err := fx.service.TrackShipment(ctx, "SHIP-404")
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)
}

func TestShipmentService_GenerateTrackingQR(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()
	shipment := &entity.Shipment{ID: uuid.New(), DisplayID: "SHIP-000002", BuyerID: uuid.New(), SellerID: uuid.New()}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.shipmentRepo.EXPECT().FindByID(ctx, shipment.ID).Return(shipment, nil).Twice()
	fx.qrService.EXPECT().GenerateTrackingQR("SHIP-000002").Return(png, nil)

	got, err := fx.service.GenerateTrackingQR(ctx, shipment.BuyerID, shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	_, err = fx.service.GenerateTrackingQR(ctx, uuid.New(), shipment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrShipmentOwnershipViolation)
}

func TestShipmentService_ListSellerShipments(t *testing.T) {
	fx := createTestShipmentService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	fx.shipmentRepo.EXPECT().ListBySeller(ctx, sellerID, 2, 20).Return([]*entity.Shipment{}, int64(21), nil)

	page, err := fx.service.ListSellerShipments(ctx, sellerID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, 2, page.TotalPages())
}

package impl

import (
	"context"
	"testing"

	"localharvest/internal/domain/entity"
	mockRepo "localharvest/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardFixtures struct {
	productRepo  *mockRepo.MockProductRepository
	orderRepo    *mockRepo.MockOrderRepository
	shipmentRepo *mockRepo.MockShipmentRepository
	service      *dashboardService
}

func createTestDashboardService(t *testing.T) dashboardFixtures {
	f := dashboardFixtures{
		productRepo:  mockRepo.NewMockProductRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		shipmentRepo: mockRepo.NewMockShipmentRepository(t),
	}
	f.service = NewDashboardService(DashboardServiceParams{
		ProductRepo:  f.productRepo,
		OrderRepo:    f.orderRepo,
		ShipmentRepo: f.shipmentRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*dashboardService)

	return f
}

func TestDashboardService_GetSellerDashboard(t *testing.T) {
	fx := createTestDashboardService(t)
	sellerID := uuid.New()
	lowStock := []*entity.Product{newTestProduct(2)}
	recent := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.productRepo.EXPECT().CountBySeller(mock.Anything, sellerID).Return(int64(8), int64(6), nil)
	fx.productRepo.EXPECT().FindLowStock(mock.Anything, sellerID, 5).Return(lowStock, nil)
	fx.orderRepo.EXPECT().CountByStatus(mock.Anything, sellerID).Return(map[entity.OrderStatus]int64{
		entity.OrderStatusPending:   2,
		entity.OrderStatusDelivered: 3,
	}, nil)
	fx.orderRepo.EXPECT().SumDeliveredRevenue(mock.Anything, sellerID).Return(decimal.RequireFromString("120.50"), nil)
	fx.shipmentRepo.EXPECT().CountOpenBySeller(mock.Anything, sellerID).Return(int64(1), nil)
	fx.orderRepo.EXPECT().
		ListBySeller(mock.Anything, sellerID, entity.OrderFilter{Page: 1, PageSize: 5}).
		Return(recent, int64(5), nil)

	dashboard, err := fx.service.GetSellerDashboard(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), dashboard.TotalProducts)
	assert.Equal(t, int64(6), dashboard.AvailableProducts)
	assert.Equal(t, lowStock, dashboard.LowStockProducts)
	assert.Equal(t, int64(5), dashboard.TotalOrders)
	assert.Equal(t, "120.5", dashboard.Revenue.String())
	assert.Equal(t, int64(1), dashboard.PendingShipments)
	assert.Len(t, dashboard.RecentOrders, 2)
}

func TestDashboardService_GetSellerDashboard_PropagatesFailure(t *testing.T) {
	fx := createTestDashboardService(t)
	sellerID := uuid.New()

	fx.productRepo.EXPECT().CountBySeller(mock.Anything, sellerID).Return(int64(0), int64(0), errors.New("db down"))
	fx.productRepo.EXPECT().FindLowStock(mock.Anything, sellerID, 5).Return(nil, nil).Maybe()
	fx.orderRepo.EXPECT().CountByStatus(mock.Anything, sellerID).Return(map[entity.OrderStatus]int64{}, nil).Maybe()
	fx.orderRepo.EXPECT().SumDeliveredRevenue(mock.Anything, sellerID).Return(decimal.Zero, nil).Maybe()
	fx.shipmentRepo.EXPECT().CountOpenBySeller(mock.Anything, sellerID).Return(int64(0), nil).Maybe()
	fx.orderRepo.EXPECT().ListBySeller(mock.Anything, sellerID, mock.Anything).Return(nil, int64(0), nil).Maybe()

	_, err := fx.service.GetSellerDashboard(context.Background(), sellerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count products")
}

package impl

import (
	"context"
	"math"
	"strings"
	"testing"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/domain/service"
	mockService "localharvest/internal/mocks/service"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	txFixture
	publisher *mockService.MockEventPublisher
	service   usecase.OrderUsecase
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	tx := newTxFixture(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewOrderService(OrderServiceParams{
		TxManager: tx.txManager,
		OrderRepo: tx.orderRepo,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{txFixture: tx, publisher: publisher, service: service}
}

func newTestAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   "Ada Buyer",
		Street:     "1 Orchard Lane",
		City:       "Springfield",
		PostalCode: "12345",
	}
}

func TestOrderService_PlaceOrder_ExplicitItems(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	tomatoes := newTestProduct(10)
	honey := newTestProduct(1)
	honey.SellerID = uuid.New()
	honey.Price = decimal.RequireFromString("12.00")
	clientTotal := decimal.NewFromInt(1)

	fx.expectTx()
	fx.productRepo.EXPECT().
		FindByIDsForUpdate(ctx, []uuid.UUID{tomatoes.ID, honey.ID}).
		Return(map[uuid.UUID]*entity.Product{tomatoes.ID: tomatoes, honey.ID: honey}, nil)
	fx.counterRepo.EXPECT().Next(ctx, repository.CounterOrder).Return(int64(42), nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, tomatoes.ID, 3).Return(7, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, honey.ID, 1).Return(0, nil)
	fx.productRepo.EXPECT().SetAvailability(ctx, honey.ID, false).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().
		PublishMarketplaceEvent(ctx, mock.MatchedBy(func(e *service.MarketplaceEvent) bool {
			return e.Type == service.EventOrderPlaced && e.OrderRef == "ORD-000042" && e.Total == "25.50"
		})).
		Return(nil)

	out, err := fx.service.PlaceOrder(ctx, buyerID, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItem{
			{ProductID: tomatoes.ID, Quantity: 3, Total: &clientTotal},
			{ProductID: honey.ID, Quantity: 1},
		},
		ShippingAddress: newTestAddress(),
		PaymentMethod:   entity.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.False(t, out.Replayed)

	order := out.Order
	assert.Equal(t, "ORD-000042", order.DisplayID)
	assert.Equal(t, tomatoes.SellerID, order.SellerID, "seller comes from the first line")
	assert.Equal(t, honey.SellerID, order.Items[1].SellerID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "13.5", order.Items[0].Total.String(), "client totals are ignored")
	assert.Equal(t, "25.5", order.TotalAmount.String())
}

func TestOrderService_PlaceOrder_FromCartClearsCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := newTestProduct(10)
	cart := entity.NewCart(uuid.New())
	cart.PromoCode = "FRESH10"
	cart.Items = append(cart.Items, entity.CartItem{ProductID: product.ID, Quantity: 2})

	fx.expectTx()
	fx.cartRepo.EXPECT().FindByBuyer(ctx, cart.BuyerID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDsForUpdate(ctx, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.counterRepo.EXPECT().Next(ctx, repository.CounterOrder).Return(int64(1), nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 2).Return(8, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(c *entity.Cart) bool { return c.IsEmpty() && c.PromoCode == "" })).
		Return(nil)
	fx.publisher.EXPECT().PublishMarketplaceEvent(ctx, mock.Anything).Return(nil)

	out, err := fx.service.PlaceOrder(ctx, cart.BuyerID, usecase.PlaceOrderInput{
		ShippingAddress: newTestAddress(),
		PaymentMethod:   entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, "9", out.Order.TotalAmount.String(), "promo discounts do not reach the order")
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()

	fx.expectTx()
	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(entity.NewCart(buyerID), nil)

	_, err := fx.service.PlaceOrder(ctx, buyerID, usecase.PlaceOrderInput{PaymentMethod: entity.PaymentMethodCard})
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_PlaceOrder_StockRejections(t *testing.T) {
	unavailable := newTestProduct(5)
	unavailable.IsAvailable = false
	scarce := newTestProduct(2)
	missingID := uuid.New()

	tests := []struct {
		name     string
		items    []usecase.PlaceOrderItem
		products map[uuid.UUID]*entity.Product
		want     error
	}{
		{
			name:     "missing product",
			items:    []usecase.PlaceOrderItem{{ProductID: missingID, Quantity: 1}},
			products: map[uuid.UUID]*entity.Product{},
			want:     domainerrors.ErrProductNotFound,
		},
		{
			name:     "unavailable product",
			items:    []usecase.PlaceOrderItem{{ProductID: unavailable.ID, Quantity: 1}},
			products: map[uuid.UUID]*entity.Product{unavailable.ID: unavailable},
			want:     domainerrors.ErrProductUnavailable,
		},
		{
			name: "duplicate lines summed past stock",
			items: []usecase.PlaceOrderItem{
				{ProductID: scarce.ID, Quantity: 2},
				{ProductID: scarce.ID, Quantity: 1},
			},
			products: map[uuid.UUID]*entity.Product{scarce.ID: scarce},
			want:     domainerrors.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.expectTx()
			fx.productRepo.EXPECT().FindByIDsForUpdate(ctx, mock.Anything).Return(tt.products, nil)

			_, err := fx.service.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
				Items:         tt.items,
				PaymentMethod: entity.PaymentMethodCard,
			})
			assert.ErrorIs(t, err, tt.want)
			fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			fx.publisher.AssertNotCalled(t, "PublishMarketplaceEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_PlaceOrder_GuardedDecrementLosesRace(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := newTestProduct(1)

	fx.expectTx()
	fx.productRepo.EXPECT().FindByIDsForUpdate(ctx, mock.Anything).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.counterRepo.EXPECT().Next(ctx, repository.CounterOrder).Return(int64(7), nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(0, repository.ErrInsufficientStock)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
		Items:         []usecase.PlaceOrderItem{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethodCard,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_PlaceOrder_InputValidation(t *testing.T) {
	t.Run("payment method", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), usecase.PlaceOrderInput{PaymentMethod: "barter"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
	})

	t.Run("zero quantity", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.expectTx()

		_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), usecase.PlaceOrderInput{
			Items:         []usecase.PlaceOrderItem{{ProductID: uuid.New(), Quantity: 0}},
			PaymentMethod: entity.PaymentMethodCard,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("quantity above line cap", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.expectTx()
		productID := uuid.New()

		_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), usecase.PlaceOrderInput{
			Items: []usecase.PlaceOrderItem{
				{ProductID: productID, Quantity: 1},
				{ProductID: productID, Quantity: math.MaxInt},
			},
			PaymentMethod: entity.PaymentMethodCard,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
		fx.productRepo.AssertNotCalled(t, "FindByIDsForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("idempotency key too long", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), usecase.PlaceOrderInput{
			Items:          []usecase.PlaceOrderItem{{ProductID: uuid.New(), Quantity: 1}},
			PaymentMethod:  entity.PaymentMethodCard,
			IdempotencyKey: strings.Repeat("k", entity.MaxIdempotencyKeyLength+1),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		fx.orderRepo.AssertNotCalled(t, "FindByIdempotencyKey", mock.Anything, mock.Anything, mock.Anything)
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func TestOrderService_PlaceOrder_IdempotentReplay(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	existing := &entity.Order{ID: uuid.New(), BuyerID: buyerID, DisplayID: "ORD-000009", IdempotencyKey: "key-1"}

	fx.orderRepo.EXPECT().FindByIdempotencyKey(ctx, buyerID, "key-1").Return(existing, nil)

	out, err := fx.service.PlaceOrder(ctx, buyerID, usecase.PlaceOrderInput{
		Items:          []usecase.PlaceOrderItem{{ProductID: uuid.New(), Quantity: 1}},
		PaymentMethod:  entity.PaymentMethodCard,
		IdempotencyKey: " key-1 ",
	})
	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.Same(t, existing, out.Order)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_ConcurrentKeyConflictReplays(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	winner := &entity.Order{ID: uuid.New(), BuyerID: buyerID, DisplayID: "ORD-000010"}

	fx.orderRepo.EXPECT().FindByIdempotencyKey(ctx, buyerID, "key-2").Return(nil, repository.ErrOrderNotFound).Once()
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		Return(domainerrors.ErrConflict.WithDetails("an order with this idempotency key already exists"))
	fx.orderRepo.EXPECT().FindByIdempotencyKey(ctx, buyerID, "key-2").Return(winner, nil).Once()

	out, err := fx.service.PlaceOrder(ctx, buyerID, usecase.PlaceOrderInput{
		Items:          []usecase.PlaceOrderItem{{ProductID: uuid.New(), Quantity: 1}},
		PaymentMethod:  entity.PaymentMethodCard,
		IdempotencyKey: "key-2",
	})
	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.Equal(t, winner.ID, out.Order.ID)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	sellerID := uuid.New()

	tests := []struct {
		name    string
		current entity.OrderStatus
		next    entity.OrderStatus
		seller  uuid.UUID
		want    error
	}{
		{name: "pending to confirmed", current: entity.OrderStatusPending, next: entity.OrderStatusConfirmed, seller: sellerID},
		{name: "same status is allowed", current: entity.OrderStatusShipped, next: entity.OrderStatusShipped, seller: sellerID},
		{name: "delivered is terminal", current: entity.OrderStatusDelivered, next: entity.OrderStatusPending, seller: sellerID, want: domainerrors.ErrInvalidStatusTransition},
		{name: "other seller", current: entity.OrderStatusPending, next: entity.OrderStatusConfirmed, seller: uuid.New(), want: domainerrors.ErrOrderOwnershipViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			order := &entity.Order{ID: uuid.New(), SellerID: sellerID, BuyerID: uuid.New(), Status: tt.current, DisplayID: "ORD-000001"}

			fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			if tt.want == nil {
				fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, tt.next).Return(nil)
				fx.publisher.EXPECT().PublishMarketplaceEvent(ctx, mock.Anything).Return(nil)
			}

			updated, err := fx.service.UpdateOrderStatus(ctx, tt.seller, order.ID, tt.next)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, updated.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_LenientModeAllowsAnyStatus(t *testing.T) {
	fx := createTestOrderService(t)
	cfg := newTestConfig()
	cfg.Marketplace.StrictOrderTransitions = false
	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), SellerID: uuid.New(), Status: entity.OrderStatusDelivered}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPending).Return(nil)
	fx.publisher.EXPECT().PublishMarketplaceEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	updated, err := fx.service.UpdateOrderStatus(ctx, order.SellerID, order.ID, entity.OrderStatusPending)
	require.NoError(t, err, "publish failures must not fail the request")
	assert.Equal(t, entity.OrderStatusPending, updated.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), "lost")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_GetOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Times(3)

	got, err := fx.service.GetOrder(ctx, order.BuyerID, order.ID)
	require.NoError(t, err)
	assert.Same(t, order, got)

	_, err = fx.service.GetOrder(ctx, order.SellerID, order.ID)
	require.NoError(t, err)

	_, err = fx.service.GetOrder(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_ListSellerOrders_ClampsPaging(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	fx.orderRepo.EXPECT().
		ListBySeller(ctx, sellerID, entity.OrderFilter{Status: entity.OrderStatusPending, Page: 1, PageSize: 100}).
		Return([]*entity.Order{{ID: uuid.New()}}, int64(101), nil)

	page, err := fx.service.ListSellerOrders(ctx, sellerID, entity.OrderFilter{Status: entity.OrderStatusPending, Page: 0, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(101), page.Total)
	assert.Equal(t, 2, page.TotalPages())
}

//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"localharvest/config"
	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/infra/persistence/postgres"
	mockService "localharvest/internal/mocks/service"
	"localharvest/internal/usecase"
	"localharvest/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "harvest",
			"POSTGRES_PASSWORD": "harvest",
			"POSTGRES_DB":       "localharvest",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=harvest password=harvest dbname=localharvest sslmode=disable",
		host, port.Port())
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, postgres.MigrateUp(ctx, db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		Name:         "Test " + role.String(),
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID uuid.UUID, quantity int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        "Heirloom tomatoes",
		Price:       decimal.RequireFromString("4.50"),
		Category:    entity.CategoryVegetables,
		Quantity:    quantity,
		Unit:        entity.UnitKilogram,
		IsAvailable: true,
	}
	require.NoError(t, postgres.NewProductRepository(db).Create(context.Background(), product))

	return product
}

func testAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   "Ada Buyer",
		Phone:      "555-0100",
		Street:     "1 Orchard Lane",
		City:       "Springfield",
		State:      "OR",
		PostalCode: "97477",
		Country:    "US",
	}
}

func newOrderService(t *testing.T, db *gorm.DB) usecase.OrderUsecase {
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishMarketplaceEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return impl.NewOrderService(impl.OrderServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		OrderRepo: postgres.NewOrderRepository(db),
		Publisher: publisher,
		Config: &config.Config{Marketplace: &config.MarketplaceConfig{
			OrderPrefix:         "ORD",
			ShipmentPrefix:      "SHIP",
			DefaultDeliveryDays: 3,
			DefaultPageSize:     20,
			MaxPageSize:         100,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("DecrementStockNeverGoesNegative", func(t *testing.T) {
		seller := seedUser(t, db, entity.RoleSeller)
		product := seedProduct(t, db, seller.ID, 3)
		repo := postgres.NewProductRepository(db)

		remaining, err := repo.DecrementStock(ctx, product.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)

		_, err = repo.DecrementStock(ctx, product.ID, 2)
		assert.ErrorIs(t, err, repository.ErrInsufficientStock)

		stored, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Quantity)
	})

	t.Run("CounterIsMonotonic", func(t *testing.T) {
		counters := postgres.NewCounterRepository(db)

		first, err := counters.Next(ctx, repository.CounterShipment)
		require.NoError(t, err)
		second, err := counters.Next(ctx, repository.CounterShipment)
		require.NoError(t, err)
		assert.Equal(t, first+1, second)
	})

	t.Run("PlaceOrderReplaysIdempotencyKey", func(t *testing.T) {
		seller := seedUser(t, db, entity.RoleSeller)
		buyer := seedUser(t, db, entity.RoleBuyer)
		product := seedProduct(t, db, seller.ID, 10)
		service := newOrderService(t, db)

		input := usecase.PlaceOrderInput{
			Items:           []usecase.PlaceOrderItem{{ProductID: product.ID, Quantity: 2}},
			ShippingAddress: testAddress(),
			PaymentMethod:   entity.PaymentMethodCard,
			IdempotencyKey:  "checkout-1",
		}

		first, err := service.PlaceOrder(ctx, buyer.ID, input)
		require.NoError(t, err)
		assert.False(t, first.Replayed)
		assert.True(t, decimal.RequireFromString("9.00").Equal(first.Order.TotalAmount))

		second, err := service.PlaceOrder(ctx, buyer.ID, input)
		require.NoError(t, err)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.Order.ID, second.Order.ID)

		stored, err := postgres.NewProductRepository(db).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 8, stored.Quantity)
	})

	t.Run("ConcurrentCheckoutsForLastUnit", func(t *testing.T) {
		seller := seedUser(t, db, entity.RoleSeller)
		product := seedProduct(t, db, seller.ID, 1)
		service := newOrderService(t, db)

		const buyers = 5
		buyerIDs := make([]uuid.UUID, 0, buyers)
		for range buyers {
			buyerIDs = append(buyerIDs, seedUser(t, db, entity.RoleBuyer).ID)
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			placed   int
			rejected int
		)
		for _, buyerID := range buyerIDs {
			wg.Add(1)
			go func(buyerID uuid.UUID) {
				defer wg.Done()

				_, err := service.PlaceOrder(ctx, buyerID, usecase.PlaceOrderInput{
					Items:           []usecase.PlaceOrderItem{{ProductID: product.ID, Quantity: 1}},
					ShippingAddress: testAddress(),
					PaymentMethod:   entity.PaymentMethodCash,
				})

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					placed++
				case errors.Is(err, domainerrors.ErrInsufficientStock), errors.Is(err, domainerrors.ErrProductUnavailable):
					rejected++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(buyerID)
		}
		wg.Wait()

		assert.Equal(t, 1, placed)
		assert.Equal(t, buyers-1, rejected)

		stored, err := postgres.NewProductRepository(db).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Quantity)
		assert.False(t, stored.IsAvailable)
	})

	t.Run("OneShipmentPerOrder", func(t *testing.T) {
		seller := seedUser(t, db, entity.RoleSeller)
		buyer := seedUser(t, db, entity.RoleBuyer)
		product := seedProduct(t, db, seller.ID, 5)

		out, err := newOrderService(t, db).PlaceOrder(ctx, buyer.ID, usecase.PlaceOrderInput{
			Items:           []usecase.PlaceOrderItem{{ProductID: product.ID, Quantity: 1}},
			ShippingAddress: testAddress(),
			PaymentMethod:   entity.PaymentMethodCard,
		})
		require.NoError(t, err)

		shipments := postgres.NewShipmentRepository(db)
		newShipment := func(displayID string) *entity.Shipment {
			return &entity.Shipment{
				DisplayID:            displayID,
				OrderID:              out.Order.ID,
				SellerID:             seller.ID,
				BuyerID:              buyer.ID,
				CustomerName:         buyer.Name,
				Address:              testAddress(),
				Status:               entity.ShipmentStatusPending,
				ExpectedDeliveryDate: time.Now().AddDate(0, 0, 3),
			}
		}

		require.NoError(t, shipments.Create(ctx, newShipment("SHIP-IT-1")))
		err = shipments.Create(ctx, newShipment("SHIP-IT-2"))
		assert.ErrorIs(t, err, repository.ErrDuplicateShipment)

		found, err := shipments.FindByDisplayID(ctx, "SHIP-IT-1")
		require.NoError(t, err)
		assert.Equal(t, out.Order.ID, found.OrderID)
	})

	t.Run("OrderedProductCanBeDeleted", func(t *testing.T) {
		seller := seedUser(t, db, entity.RoleSeller)
		buyer := seedUser(t, db, entity.RoleBuyer)
		product := seedProduct(t, db, seller.ID, 5)

		out, err := newOrderService(t, db).PlaceOrder(ctx, buyer.ID, usecase.PlaceOrderInput{
			Items:           []usecase.PlaceOrderItem{{ProductID: product.ID, Quantity: 2}},
			ShippingAddress: testAddress(),
			PaymentMethod:   entity.PaymentMethodCard,
		})
		require.NoError(t, err)

		products := postgres.NewProductRepository(db)
		require.NoError(t, products.Delete(ctx, product.ID))
		_, err = products.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)

		order, err := postgres.NewOrderRepository(db).FindByID(ctx, out.Order.ID)
		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, product.ID, order.Items[0].ProductID)
		assert.Equal(t, product.Name, order.Items[0].Name)
		assert.True(t, decimal.RequireFromString("9.00").Equal(order.Items[0].Total))
	})
}

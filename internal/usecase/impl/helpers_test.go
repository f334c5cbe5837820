package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"localharvest/config"
	"localharvest/internal/domain/repository"
	mockRepo "localharvest/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Marketplace: &config.MarketplaceConfig{
			OrderPrefix:            "ORD",
			ShipmentPrefix:         "SHIP",
			StrictOrderTransitions: true,
			DefaultDeliveryDays:    3,
			LowStockThreshold:      5,
			DefaultPageSize:        20,
			MaxPageSize:            100,
			PromoCodes:             map[string]float64{"FRESH10": 10},
		},
	}
}

// txFixture wires a mock transaction manager whose factory hands out the same
// repository mocks that the test sets expectations on.
type txFixture struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	productRepo  *mockRepo.MockProductRepository
	cartRepo     *mockRepo.MockCartRepository
	orderRepo    *mockRepo.MockOrderRepository
	shipmentRepo *mockRepo.MockShipmentRepository
	counterRepo  *mockRepo.MockCounterRepository
}

func newTxFixture(t *testing.T) txFixture {
	f := txFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		shipmentRepo: mockRepo.NewMockShipmentRepository(t),
		counterRepo:  mockRepo.NewMockCounterRepository(t),
	}

	f.factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo).Maybe()
	f.factory.EXPECT().NewCartRepository().Return(f.cartRepo).Maybe()
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo).Maybe()
	f.factory.EXPECT().NewShipmentRepository().Return(f.shipmentRepo).Maybe()
	f.factory.EXPECT().NewCounterRepository().Return(f.counterRepo).Maybe()

	return f
}

// expectTx runs the transaction body against the mock factory.
func (f txFixture) expectTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

package repository

import (
	"context"
	"errors"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders and their frozen line items.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIdempotencyKey returns the order a buyer already placed with key.
	FindByIdempotencyKey(ctx context.Context, buyerID uuid.UUID, key string) (*entity.Order, error)

	ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, int64, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	CountByStatus(ctx context.Context, sellerID uuid.UUID) (map[entity.OrderStatus]int64, error)
	SumDeliveredRevenue(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error)
}

package repository

import (
	"context"
	"errors"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a guarded stock decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDsForUpdate loads products and locks their rows until the surrounding
	// transaction ends. Missing ids are simply absent from the result.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error

	// DecrementStock subtracts quantity only if enough stock remains and returns the
	// remaining quantity. It returns ErrInsufficientStock when the guard fails.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (int, error)

	CountBySeller(ctx context.Context, sellerID uuid.UUID) (total int64, available int64, err error)
	FindLowStock(ctx context.Context, sellerID uuid.UUID, threshold int) ([]*entity.Product, error)
}

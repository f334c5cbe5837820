package usecase

import (
	"context"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase consolidates a buyer's cart. Every operation returns the cart as persisted.
// Cart operations never reserve stock; availability is enforced when an order is placed.
type CartUsecase interface {
	// GetCart returns the buyer's cart, creating an empty one on first access.
	GetCart(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error)

	// AddItem merges quantity into the line for productID and refreshes the product snapshot.
	AddItem(ctx context.Context, buyerID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// UpdateItem sets the absolute quantity of an existing line.
	UpdateItem(ctx context.Context, buyerID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveItem drops a line; removing an absent product is not an error.
	RemoveItem(ctx context.Context, buyerID, productID uuid.UUID) (*entity.Cart, error)

	Clear(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error)

	// ApplyPromo attaches a configured promo code to the cart.
	ApplyPromo(ctx context.Context, buyerID uuid.UUID, code string) (*entity.Cart, error)
}

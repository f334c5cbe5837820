package repository

import (
	"context"
	"errors"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when the buyer has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists the single cart of each buyer.
type CartRepository interface {
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error)

	// Save upserts the cart header on buyer_id and replaces all of its lines.
	Save(ctx context.Context, cart *entity.Cart) error
}

package usecase

import (
	"context"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderItem is one requested line. Total is what the client computed; the
// server recomputes it from the catalog.
type PlaceOrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	Total     *decimal.Decimal
}

// PlaceOrderInput describes a checkout. With no items the buyer's cart is ordered and then cleared.
type PlaceOrderInput struct {
	Items           []PlaceOrderItem
	ShippingAddress entity.ShippingAddress
	PaymentMethod   entity.PaymentMethod
	Notes           string
	IdempotencyKey  string
}

// PlaceOrderOutput carries the placed order. Replayed is set when the idempotency
// key matched an order placed earlier.
type PlaceOrderOutput struct {
	Order    *entity.Order
	Replayed bool
}

// OrderUsecase places orders and moves them through their lifecycle.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, buyerID uuid.UUID, input PlaceOrderInput) (*PlaceOrderOutput, error)

	// UpdateOrderStatus lets the seller of an order change its status.
	UpdateOrderStatus(ctx context.Context, sellerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// GetOrder returns an order to its buyer or seller.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter) (*Page[*entity.Order], error)
	ListSellerOrders(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter) (*Page[*entity.Order], error)
}

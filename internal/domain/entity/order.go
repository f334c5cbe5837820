package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every order status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
	OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusShipped, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// CanTransitionTo reports whether the strict lifecycle allows moving to next.
// Setting the current status again is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PaymentMethod records how the buyer intends to pay. No payment is captured.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodCash
}

// ShippingAddress is the delivery address captured on an order and copied onto its shipment.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country,omitempty"`
}

// OrderItem is a frozen copy of a purchased line.
type OrderItem struct {
	ProductID uuid.UUID
	SellerID  uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Unit      Unit
	Total     decimal.Decimal
}

// Order is a placed purchase. SellerID is taken from the first line item.
type Order struct {
	ID              uuid.UUID
	DisplayID       string
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	Status          OrderStatus
	Notes           string
	IdempotencyKey  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsVisibleTo reports whether userID is the buyer or the seller of the order.
func (o *Order) IsVisibleTo(userID uuid.UUID) bool {
	return o.BuyerID == userID || o.SellerID == userID
}

// RecalculateTotal recomputes every line total and the order total from prices and quantities.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for i := range o.Items {
		o.Items[i].Total = o.Items[i].Price.Mul(decimal.NewFromInt(int64(o.Items[i].Quantity)))
		total = total.Add(o.Items[i].Total)
	}
	o.TotalAmount = total
}

// MaxIdempotencyKeyLength matches the orders.idempotency_key column.
const MaxIdempotencyKeyLength = 64

// FormatDisplayID renders a human-facing identifier such as ORD-000123.
func FormatDisplayID(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status   OrderStatus
	Page     int
	PageSize int
}

// Offset returns the row offset of the page (pages start at 1).
func (f OrderFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}

	return (f.Page - 1) * f.PageSize
}

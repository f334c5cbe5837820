package entity

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusShipped, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, status.IsValid(), status)
	}
	assert.False(t, OrderStatus("refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodCash.IsValid())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
}

func TestOrder_RecalculateTotal(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Price: decimal.NewFromInt(100), Quantity: 2, Total: decimal.NewFromInt(1)},
			{Price: decimal.RequireFromString("3.35"), Quantity: 3},
		},
	}

	order.RecalculateTotal()

	assert.True(t, order.Items[0].Total.Equal(decimal.NewFromInt(200)))
	assert.True(t, order.Items[1].Total.Equal(decimal.RequireFromString("10.05")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("210.05")))
}

func TestOrder_IsVisibleTo(t *testing.T) {
	buyer, seller := uuid.New(), uuid.New()
	order := &Order{BuyerID: buyer, SellerID: seller}

	assert.True(t, order.IsVisibleTo(buyer))
	assert.True(t, order.IsVisibleTo(seller))
	assert.False(t, order.IsVisibleTo(uuid.New()))
}

func TestFormatDisplayID(t *testing.T) {
	assert.Equal(t, "ORD-000123", FormatDisplayID("ORD", 123))
	assert.Equal(t, "SHIP-000001", FormatDisplayID("SHIP", 1))
	assert.Equal(t, "ORD-1234567", FormatDisplayID("ORD", 1234567))
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{6}$`), FormatDisplayID("ORD", 42))
}

func TestFilterOffset(t *testing.T) {
	assert.Equal(t, 0, OrderFilter{Page: 0, PageSize: 20}.Offset())
	assert.Equal(t, 0, OrderFilter{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, OrderFilter{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, 10, ProductFilter{Page: 2, PageSize: 10}.Offset())
}

package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(items ...CartItem) *Cart {
	cart := NewCart(uuid.New())
	cart.Items = append(cart.Items, items...)

	return cart
}

func TestCart_FindItem(t *testing.T) {
	productID := uuid.New()
	cart := newTestCart(CartItem{ProductID: productID, Quantity: 2})

	item, ok := cart.FindItem(productID)
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity)

	item.Quantity = 5
	assert.Equal(t, 5, cart.Items[0].Quantity, "FindItem must return a pointer into the cart")

	_, ok = cart.FindItem(uuid.New())
	assert.False(t, ok)
}

func TestCart_RemoveItem(t *testing.T) {
	keep, drop := uuid.New(), uuid.New()
	cart := newTestCart(
		CartItem{ProductID: keep, Quantity: 1},
		CartItem{ProductID: drop, Quantity: 3},
	)

	cart.RemoveItem(drop)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, keep, cart.Items[0].ProductID)

	cart.RemoveItem(uuid.New())
	assert.Len(t, cart.Items, 1, "removing an absent product is a no-op")
}

func TestCart_Totals(t *testing.T) {
	cart := newTestCart(
		CartItem{ProductID: uuid.New(), Price: decimal.RequireFromString("2.50"), Quantity: 4},
		CartItem{ProductID: uuid.New(), Price: decimal.RequireFromString("10"), Quantity: 1},
	)

	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(20)))
	assert.True(t, cart.Discount().IsZero())
	assert.Equal(t, 5, cart.ItemCount())

	cart.PromoCode = "FRESH10"
	cart.DiscountPercent = decimal.NewFromInt(10)
	assert.True(t, cart.Discount().Equal(decimal.NewFromInt(2)))
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(18)))
}

func TestCart_Clear(t *testing.T) {
	cart := newTestCart(CartItem{ProductID: uuid.New(), Quantity: 1})
	cart.PromoCode = "FRESH10"
	cart.DiscountPercent = decimal.NewFromInt(10)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.PromoCode)
	assert.True(t, cart.DiscountPercent.IsZero())
}

func TestCartItem_RefreshFrom(t *testing.T) {
	item := CartItem{ProductID: uuid.New(), Name: "old", Price: decimal.NewFromInt(1), Quantity: 2}
	product := &Product{
		ID:       item.ProductID,
		SellerID: uuid.New(),
		Name:     "Heirloom Tomatoes",
		Price:    decimal.RequireFromString("4.25"),
		Unit:     UnitKilogram,
		ImageURL: "https://img.example/tomato.jpg",
	}

	item.RefreshFrom(product)

	assert.Equal(t, "Heirloom Tomatoes", item.Name)
	assert.True(t, item.Price.Equal(product.Price))
	assert.Equal(t, product.SellerID, item.SellerID)
	assert.Equal(t, UnitKilogram, item.Unit)
	assert.Equal(t, 2, item.Quantity, "refresh must not touch the quantity")
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps the quantity of one cart or order line.
const MaxLineQuantity = 10000

var hundred = decimal.NewFromInt(100)

// CartItem is a line of a cart. Name, price, unit and image are a snapshot of the
// product taken the last time the line was added or updated.
type CartItem struct {
	ProductID uuid.UUID
	SellerID  uuid.UUID
	Name      string
	Price     decimal.Decimal
	Unit      Unit
	ImageURL  string
	Quantity  int
}

// LineTotal returns price times quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the single shopping cart of a buyer. It holds at most one line per product.
type Cart struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	Items           []CartItem
	PromoCode       string
	DiscountPercent decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCart returns an empty cart for buyerID.
func NewCart(buyerID uuid.UUID) *Cart {
	now := time.Now()

	return &Cart{
		ID:        uuid.New(),
		BuyerID:   buyerID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindItem returns the line for productID, if any.
func (c *Cart) FindItem(productID uuid.UUID) (*CartItem, bool) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i], true
		}
	}

	return nil, false
}

// RefreshFrom overwrites the snapshot fields of the line for product with live catalog values.
func (i *CartItem) RefreshFrom(product *Product) {
	i.SellerID = product.SellerID
	i.Name = product.Name
	i.Price = product.Price
	i.Unit = product.Unit
	i.ImageURL = product.ImageURL
}

// RemoveItem drops the line for productID. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// Clear empties the cart and forgets any promo code.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.PromoCode = ""
	c.DiscountPercent = decimal.Zero
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Subtotal returns the sum of line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// Discount returns the promo discount amount. It is only shown to the buyer;
// order totals are computed from the catalog without it.
func (c *Cart) Discount() decimal.Decimal {
	if c.DiscountPercent.IsZero() {
		return decimal.Zero
	}

	return c.Subtotal().Mul(c.DiscountPercent).Div(hundred).Round(2)
}

// Total returns the subtotal minus the promo discount.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.Discount())
}

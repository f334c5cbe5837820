package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table. buyer_id is unique: one cart per buyer.
type CartModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BuyerID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	PromoCode       string          `gorm:"type:varchar(32)"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	CartID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null"`
	Position  int             `gorm:"not null"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Unit      string          `gorm:"type:varchar(16);not null"`
	ImageURL  string          `gorm:"type:text"`
	Quantity  int             `gorm:"not null"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressColumns is embedded into orders and shipments with a column prefix.
type AddressColumns struct {
	FullName   string `gorm:"type:varchar(150)"`
	Phone      string `gorm:"type:varchar(32)"`
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(100)"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DisplayID      string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	BuyerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Shipping       AddressColumns  `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod  string          `gorm:"type:varchar(16);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	Notes          string          `gorm:"type:text"`
	IdempotencyKey *string         `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Unit      string          `gorm:"type:varchar(16);not null"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

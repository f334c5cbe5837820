package model

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentModel mirrors the 'shipments' table. order_id is unique: one shipment per order.
type ShipmentModel struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DisplayID            string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	SellerID             uuid.UUID      `gorm:"type:uuid;not null;index"`
	BuyerID              uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerName         string         `gorm:"type:varchar(150);not null"`
	Address              AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	Status               string         `gorm:"type:varchar(20);not null"`
	ExpectedDeliveryDate time.Time      `gorm:"not null"`
	ActualDeliveryDate   *time.Time
	TrackingNumber       string `gorm:"type:varchar(100)"`
	Carrier              string `gorm:"type:varchar(100)"`
	Notes                string `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (ShipmentModel) TableName() string {
	return "shipments"
}

// CounterModel mirrors the 'counters' table used for display identifiers.
type CounterModel struct {
	Name  string `gorm:"type:varchar(32);primaryKey"`
	Value int64  `gorm:"not null"`
}

func (CounterModel) TableName() string {
	return "counters"
}

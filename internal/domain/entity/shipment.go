package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus is the delivery status of a shipment.
type ShipmentStatus string

const (
	ShipmentStatusPending        ShipmentStatus = "pending"
	ShipmentStatusPreparing      ShipmentStatus = "preparing"
	ShipmentStatusInTransit      ShipmentStatus = "in_transit"
	ShipmentStatusOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentStatusDelivered      ShipmentStatus = "delivered"
	ShipmentStatusCancelled      ShipmentStatus = "cancelled"
)

// ShipmentStatuses lists every shipment status.
var ShipmentStatuses = []ShipmentStatus{
	ShipmentStatusPending, ShipmentStatusPreparing, ShipmentStatusInTransit,
	ShipmentStatusOutForDelivery, ShipmentStatusDelivered, ShipmentStatusCancelled,
}

func (s ShipmentStatus) IsValid() bool {
	for _, known := range ShipmentStatuses {
		if s == known {
			return true
		}
	}

	return false
}

// IsOpen reports whether the shipment still needs seller action.
func (s ShipmentStatus) IsOpen() bool {
	return s != ShipmentStatusDelivered && s != ShipmentStatusCancelled
}

// Shipment tracks the delivery of exactly one order.
type Shipment struct {
	ID                   uuid.UUID
	DisplayID            string
	OrderID              uuid.UUID
	SellerID             uuid.UUID
	BuyerID              uuid.UUID
	CustomerName         string
	Address              ShippingAddress
	Status               ShipmentStatus
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	TrackingNumber       string
	Carrier              string
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsVisibleTo reports whether userID is the buyer or the seller of the shipment.
func (s *Shipment) IsVisibleTo(userID uuid.UUID) bool {
	return s.BuyerID == userID || s.SellerID == userID
}

// ApplyStatus sets the status. Moving to delivered stamps the actual delivery
// date the first time only.
func (s *Shipment) ApplyStatus(status ShipmentStatus, now time.Time) {
	s.Status = status
	if status == ShipmentStatusDelivered && s.ActualDeliveryDate == nil {
		delivered := now
		s.ActualDeliveryDate = &delivered
	}
}

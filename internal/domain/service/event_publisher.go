package service

import (
	"context"
	"time"
)

// EventType names a marketplace lifecycle event.
type EventType string

const (
	EventOrderPlaced           EventType = "order.placed"
	EventOrderStatusChanged    EventType = "order.status_changed"
	EventShipmentCreated       EventType = "shipment.created"
	EventShipmentStatusChanged EventType = "shipment.status_changed"
)

// MarketplaceEvent is published after an order or shipment changes and is
// consumed by the notifier worker.
type MarketplaceEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Type        EventType `json:"type"`
	OrderID     string    `json:"order_id"`
	OrderRef    string    `json:"order_ref"`
	ShipmentID  string    `json:"shipment_id,omitempty"`
	ShipmentRef string    `json:"shipment_ref,omitempty"`
	BuyerID     string    `json:"buyer_id"`
	SellerID    string    `json:"seller_id"`
	Status      string    `json:"status,omitempty"`
	Total       string    `json:"total,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RecipientID returns the user who should be told about the event:
// the seller for new orders, the buyer for everything else.
func (e *MarketplaceEvent) RecipientID() string {
	if e.Type == EventOrderPlaced {
		return e.SellerID
	}

	return e.BuyerID
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

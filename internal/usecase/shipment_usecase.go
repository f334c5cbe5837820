package usecase

import (
	"context"
	"time"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShipmentInput opens the shipment of an order.
type CreateShipmentInput struct {
	OrderID              uuid.UUID
	ExpectedDeliveryDate *time.Time // Defaults to now plus the configured delivery days
	TrackingNumber       string
	Carrier              string
	Notes                string
}

// UpdateShipmentStatusInput changes the status; nil fields are left untouched.
type UpdateShipmentStatusInput struct {
	Status         entity.ShipmentStatus
	TrackingNumber *string
	Carrier        *string
	Notes          *string
}

// TrackingView is the public, redacted view of a shipment.
type TrackingView struct {
	DisplayID            string
	OrderRef             string
	Status               entity.ShipmentStatus
	Carrier              string
	TrackingNumber       string
	DestinationCity      string
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	UpdatedAt            time.Time
}

// ShipmentUsecase manages the delivery side of orders.
type ShipmentUsecase interface {
	CreateShipment(ctx context.Context, sellerID uuid.UUID, input CreateShipmentInput) (*entity.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, sellerID, shipmentID uuid.UUID, input UpdateShipmentStatusInput) (*entity.Shipment, error)

	GetShipment(ctx context.Context, userID, shipmentID uuid.UUID) (*entity.Shipment, error)
	GetShipmentByOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Shipment, error)
	ListSellerShipments(ctx context.Context, sellerID uuid.UUID, page, pageSize int) (*Page[*entity.Shipment], error)

	// TrackShipment looks a shipment up by display id without authentication.
	TrackShipment(ctx context.Context, displayID string) (*TrackingView, error)

	// GenerateTrackingQR renders a PNG that links to the public tracking page.
	GenerateTrackingQR(ctx context.Context, userID, shipmentID uuid.UUID) ([]byte, error)
}

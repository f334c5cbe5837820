package repository

import (
	"context"
	"errors"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrShipmentNotFound is returned when a shipment is not found.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrDuplicateShipment is returned when the order already has a shipment.
	ErrDuplicateShipment = errors.New("shipment already exists for order")
)

// ShipmentRepository persists shipments. Each order has at most one shipment.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error
	Update(ctx context.Context, shipment *entity.Shipment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Shipment, error)
	FindByDisplayID(ctx context.Context, displayID string) (*entity.Shipment, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, page, pageSize int) ([]*entity.Shipment, int64, error)
	CountOpenBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error)
}

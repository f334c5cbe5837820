package repository

import "context"

// Counter names used for display identifiers.
const (
	CounterOrder    = "order"
	CounterShipment = "shipment"
)

// CounterRepository hands out monotonically increasing sequence values.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new value.
	Next(ctx context.Context, name string) (int64, error)
}

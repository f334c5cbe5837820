// Package delivery holds the inbound adapters (HTTP API, push worker, Kafka consumer).
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}

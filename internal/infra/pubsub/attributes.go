package pubsub

import (
	"encoding/json"

	"localharvest/internal/domain/service"

	"github.com/pkg/errors"
)

// eventAttributes are copied onto every transport message for filtering and tracing.
func eventAttributes(event *service.MarketplaceEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"order_id":   event.OrderID,
	}
	if event.ShipmentID != "" {
		attributes["shipment_id"] = event.ShipmentID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func encodeEvent(event *service.MarketplaceEvent) ([]byte, error) {
	if event == nil {
		return nil, errors.New("nil marketplace event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode marketplace event")
	}

	return data, nil
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"localharvest/config"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/service"
)

// normalizePage clamps paging input to the configured bounds.
func normalizePage(page, pageSize int, rules *config.MarketplaceConfig) (int, int) {
	if page < 1 {
		page = 1
	}

	defaultSize, maxSize := 20, 100
	if rules != nil {
		defaultSize, maxSize = rules.DefaultPageSize, rules.MaxPageSize
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	return page, pageSize
}

// publishEvent hands event to the publisher after the triggering transaction has
// committed. Failures are logged and never surface to the caller.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MarketplaceEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish marketplace event",
			slog.String("event_type", string(event.Type)),
			slog.String("order_ref", event.OrderRef),
			slog.Any("error", err),
		)
	}
}

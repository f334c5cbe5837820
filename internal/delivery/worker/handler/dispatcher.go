package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/service"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const requestIDAttribute = "request_id"

// ErrMalformedEvent marks a payload that can never be processed and should be acknowledged.
var ErrMalformedEvent = errors.New("malformed marketplace event")

type EventDispatcherParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// EventDispatcher decodes a marketplace event from any transport and hands it
// to the notification usecase with a request-scoped logger.
type EventDispatcher struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewEventDispatcher(params EventDispatcherParams) *EventDispatcher {
	return &EventDispatcher{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// Dispatch returns ErrMalformedEvent for undecodable payloads; other errors come
// from the usecase and may be retryable.
func (d *EventDispatcher) Dispatch(ctx context.Context, data []byte, attributes map[string]string) error {
	var event service.MarketplaceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		d.logger.ErrorContext(ctx, "[Worker] Failed to parse marketplace event", slog.Any("error", err))

		return errors.Wrap(ErrMalformedEvent, err.Error())
	}

	requestID := extractRequestID(ctx, attributes, &event)
	reqLogger := d.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing marketplace event",
		slog.String("event_type", string(event.Type)),
		slog.String("order_ref", event.OrderRef),
	)

	if err := d.notificationUC.HandleEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process marketplace event",
			slog.String("event_type", string(event.Type)),
			slog.String("order_ref", event.OrderRef),
			slog.Any("error", err),
			slog.Bool("retryable", usecase.IsRetryable(err)),
		)

		return err
	}

	return nil
}

// extractRequestID prefers transport attributes, then the payload, then the
// incoming context, and finally generates one.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.MarketplaceEvent) string {
	if requestID := attributes[requestIDAttribute]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

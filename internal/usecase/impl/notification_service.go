package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	"localharvest/internal/domain/repository"
	"localharvest/internal/domain/service"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleEvent pushes event to every active device of its recipient.
func (s *notificationService) HandleEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	if event == nil {
		return errors.New("event is nil")
	}

	recipientID, err := uuid.Parse(event.RecipientID())
	if err != nil {
		return errors.Wrapf(err, "invalid recipient id %q", event.RecipientID())
	}

	message, ok := composeMessage(event)
	if !ok {
		return errors.Errorf("unsupported event type %q", event.Type)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "failed to fetch recipient devices"))
	}
	if len(devices) == 0 {
		s.log(ctx).Debug("Recipient has no active devices", slog.String("user_id", recipientID.String()))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)
	for start := 0; start < len(tokens); start += service.MaxPushBatchSize {
		end := min(start+service.MaxPushBatchSize, len(tokens))
		batch := tokens[start:end]

		result, err := s.notificationSvc.SendBatchNotification(ctx, batch, *message)
		if err != nil {
			s.log(ctx).Warn("Push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}

		totalSent += result.SuccessCount
		totalFailed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Any("error", err))
		} else {
			s.log(ctx).Info("Deactivated devices with invalid tokens", slog.Int64("count", deactivated))
		}
	}

	s.log(ctx).Info("Marketplace event delivered",
		slog.String("event_type", string(event.Type)),
		slog.String("order_ref", event.OrderRef),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
	)

	return nil
}

func composeMessage(event *service.MarketplaceEvent) (*service.PushMessage, bool) {
	data := map[string]string{
		"event_type": string(event.Type),
		"order_id":   event.OrderID,
		"order_ref":  event.OrderRef,
	}
	if event.ShipmentID != "" {
		data["shipment_id"] = event.ShipmentID
		data["shipment_ref"] = event.ShipmentRef
	}
	if event.Status != "" {
		data["status"] = event.Status
	}

	msg := &service.PushMessage{Data: data}
	switch event.Type {
	case service.EventOrderPlaced:
		msg.Title = "New order received"
		msg.Body = fmt.Sprintf("Order %s was placed for %s", event.OrderRef, event.Total)
	case service.EventOrderStatusChanged:
		msg.Title = "Order update"
		msg.Body = fmt.Sprintf("Order %s is now %s", event.OrderRef, statusLabel(event.Status))
	case service.EventShipmentCreated:
		msg.Title = "Your order is on its way"
		msg.Body = fmt.Sprintf("Shipment %s was created for order %s", event.ShipmentRef, event.OrderRef)
	case service.EventShipmentStatusChanged:
		msg.Title = "Shipment update"
		msg.Body = fmt.Sprintf("Shipment %s is now %s", event.ShipmentRef, statusLabel(event.Status))
	default:
		return nil, false
	}

	return msg, true
}

func statusLabel(status string) string {
	switch entity.ShipmentStatus(status) {
	case entity.ShipmentStatusInTransit:
		return "in transit"
	case entity.ShipmentStatusOutForDelivery:
		return "out for delivery"
	}

	return status
}

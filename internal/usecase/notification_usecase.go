package usecase

import (
	"context"
	"fmt"

	"localharvest/internal/domain/service"

	"github.com/pkg/errors"
)

// NotificationUsecase turns marketplace events into device push notifications.
type NotificationUsecase interface {
	// HandleEvent notifies the recipient of event. A RetryableError asks the
	// transport to redeliver; any other error means the event should be dropped.
	HandleEvent(ctx context.Context, event *service.MarketplaceEvent) error
}

// RetryableError marks a failure that may succeed on redelivery.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err or anything it wraps is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

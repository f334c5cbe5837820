package service

import (
	"context"
)

// MaxPushBatchSize is the most device tokens a single multicast send accepts.
const MaxPushBatchSize = 500

// PushMessage is the content of a device push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarises a multicast send.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends one message to at most MaxPushBatchSize tokens
	SendBatchNotification(ctx context.Context, tokens []string, msg PushMessage) (*BatchResult, error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token string, msg PushMessage) error
}

package notification

import (
	"context"
	"log/slog"

	"localharvest/internal/domain/service"
)

// logService stands in for Firebase when no credentials are configured. It
// reports every token as delivered and writes the message to the log.
type logService struct {
	logger *slog.Logger
}

func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token string, msg service.PushMessage) error {
	s.logger.InfoContext(ctx, "[LogPush] Notification",
		slog.String("token_prefix", token[:min(10, len(token))]),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return nil
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) (*service.BatchResult, error) {
	s.logger.InfoContext(ctx, "[LogPush] Batch notification",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return &service.BatchResult{SuccessCount: len(tokens)}, nil
}

package notification

import (
	"context"
	"log/slog"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/service"
)

type logService struct {
	logger *slog.Logger
}

// NewLogService returns a PushService that only writes notifications to the log.
func NewLogService(logger *slog.Logger) service.PushService {
	return &logService{logger: logger}
}

func (s *logService) SendNotification(ctx context.Context, id string, content entity.NotificationContent, options entity.NotificationOptions) (*service.PushResult, error) {
	s.logger.InfoContext(ctx, "Notification delivered",
		slog.String("notification_id", id),
		slog.String("title", content.Title),
		slog.String("body", content.Body),
		slog.Bool("sound", options.Sound),
		slog.Bool("vibrate", options.Vibrate),
		slog.String("channel_id", options.ChannelID),
	)

	return &service.PushResult{SuccessCount: 1}, nil
}

package service

import (
	"context"
	"time"

	"agenda/internal/domain/entity"
)

// PushResult summarizes one push delivery.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// PushService delivers a rendered notification to the user's devices.
type PushService interface {
	// SendNotification pushes content with the given presentation options.
	SendNotification(ctx context.Context, id string, content entity.NotificationContent, options entity.NotificationOptions) (*PushResult, error)
}

// NotificationScheduler is the platform's local notification scheduler.
type NotificationScheduler interface {
	// RequestPermissions asks for alert, badge and sound permissions.
	RequestPermissions(ctx context.Context) error

	// CreateChannel registers the channel used by every notification.
	CreateChannel(ctx context.Context, id, name string) error

	// ScheduleAt arranges a one-shot notification keyed by id at the given time.
	ScheduleAt(ctx context.Context, id string, content entity.NotificationContent, at time.Time, options entity.NotificationOptions) error

	// Cancel drops the pending notification keyed by id. Unknown ids are a no-op.
	Cancel(ctx context.Context, id string) error

	// FireNow delivers a notification immediately.
	FireNow(ctx context.Context, id string, content entity.NotificationContent, options entity.NotificationOptions) error

	// Pending lists notifications that have not fired yet.
	Pending() []entity.ScheduledNotification
}

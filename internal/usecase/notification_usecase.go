package usecase

import (
	"context"
	"time"

	"agenda/internal/domain/entity"
)

// NotificationUsecase is the gateway to local notifications and speech
type NotificationUsecase interface {
	// Initialize requests permissions, creates the notification channel and
	// configures speech. Calls after the first success are no-ops.
	Initialize(ctx context.Context) error

	// ScheduleNotification arranges a one-shot notification keyed by id at the given time
	ScheduleNotification(ctx context.Context, id string, content entity.NotificationContent, at time.Time, options entity.NotificationOptions) error

	// CancelNotification drops a scheduled notification. Unknown ids are a no-op.
	CancelNotification(ctx context.Context, id string) error

	// NotifyNow delivers a notification immediately
	NotifyNow(ctx context.Context, id string, content entity.NotificationContent, options entity.NotificationOptions) error

	// Speak announces message when voice alerts are enabled, in language or
	// the configured voice language when language is empty. It does not wait
	// for playback to finish.
	Speak(ctx context.Context, message, language string) error

	// TestVoice speaks a fixed sample message
	TestVoice(ctx context.Context) error

	// ListVoices returns the engine's voices, or an empty list on failure
	ListVoices(ctx context.Context) []entity.Voice

	// VoicesOrFallback returns ListVoices, or a fixed list when it is empty
	VoicesOrFallback(ctx context.Context) []entity.Voice

	// PendingNotifications lists notifications waiting to fire
	PendingNotifications(ctx context.Context) []entity.ScheduledNotification
}

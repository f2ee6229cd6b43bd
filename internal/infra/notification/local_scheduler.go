// Package notification implements the local notification scheduler and the
// push services it delivers through.
package notification

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/lifecycle"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
)

type pendingNotification struct {
	notification entity.ScheduledNotification
	timer        *time.Timer
}

// localScheduler holds one timer per scheduled id and hands due notifications to a PushService.
type localScheduler struct {
	push   service.PushService
	logger *slog.Logger

	mu          sync.Mutex
	pending     map[string]*pendingNotification
	channels    map[string]string
	permissions bool
	closed      bool
}

func newLocalScheduler(push service.PushService, logger *slog.Logger) *localScheduler {
	return &localScheduler{
		push:     push,
		logger:   logger,
		pending:  make(map[string]*pendingNotification),
		channels: make(map[string]string),
	}
}

// RequestPermissions grants alert, badge and sound. There is no OS prompt on the server side.
func (s *localScheduler) RequestPermissions(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.permissions = true
	s.logger.DebugContext(ctx, "Notification permissions granted",
		slog.Bool("alert", true),
		slog.Bool("badge", true),
		slog.Bool("sound", true),
	)

	return nil
}

func (s *localScheduler) CreateChannel(ctx context.Context, id, name string) error {
	if id == "" {
		return errors.New("channel id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.channels[id] = name
	s.logger.DebugContext(ctx, "Notification channel created", slog.String("channel_id", id), slog.String("name", name))

	return nil
}

// ScheduleAt arms a timer for at. A time already past fires right away.
// Scheduling an id that is still pending replaces it.
func (s *localScheduler) ScheduleAt(ctx context.Context, id string, content entity.NotificationContent, at time.Time, options entity.NotificationOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("notification scheduler is stopped")
	}

	if existing, ok := s.pending[id]; ok {
		existing.timer.Stop()
	}

	entry := &pendingNotification{
		notification: entity.ScheduledNotification{
			ID:      id,
			At:      at,
			Content: content,
			Options: s.withChannel(options),
		},
	}
	entry.timer = time.AfterFunc(max(time.Until(at), 0), func() {
		s.fire(entry)
	})
	s.pending[id] = entry

	s.logger.DebugContext(ctx, "Notification scheduled", slog.String("notification_id", id), slog.Time("at", at))

	return nil
}

// Cancel stops the pending timer for id. Unknown or already fired ids are a no-op.
func (s *localScheduler) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.pending[id]; ok {
		entry.timer.Stop()
		delete(s.pending, id)
		s.logger.DebugContext(ctx, "Notification cancelled", slog.String("notification_id", id))
	}

	return nil
}

func (s *localScheduler) FireNow(ctx context.Context, id string, content entity.NotificationContent, options entity.NotificationOptions) error {
	s.mu.Lock()
	options = s.withChannel(options)
	s.mu.Unlock()

	if _, err := s.push.SendNotification(ctx, id, content, options); err != nil {
		return errors.Wrapf(err, "failed to deliver notification %s", id)
	}

	return nil
}

// Pending lists scheduled notifications ordered by fire time.
func (s *localScheduler) Pending() []entity.ScheduledNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.ScheduledNotification, 0, len(s.pending))
	for _, entry := range s.pending {
		out = append(out, entry.notification)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})

	return out
}

func (s *localScheduler) fire(entry *pendingNotification) {
	s.mu.Lock()
	current, ok := s.pending[entry.notification.ID]
	if !ok || current != entry {
		// cancelled or replaced after the timer went off
		s.mu.Unlock()

		return
	}
	delete(s.pending, entry.notification.ID)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	n := entry.notification
	if _, err := s.push.SendNotification(ctx, n.ID, n.Content, n.Options); err != nil {
		s.logger.Error("Failed to deliver scheduled notification",
			slog.String("notification_id", n.ID),
			slog.Any("error", err),
		)
	}
}

// stop drops every pending timer; they are not persisted across restarts.
func (s *localScheduler) stop(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.pending {
		entry.timer.Stop()
		delete(s.pending, id)
	}
	s.closed = true

	return nil
}

// withChannel fills the single default channel when options name none. Callers hold mu.
func (s *localScheduler) withChannel(options entity.NotificationOptions) entity.NotificationOptions {
	if options.ChannelID != "" {
		return options
	}
	for id := range s.channels {
		options.ChannelID = id

		break
	}

	return options
}

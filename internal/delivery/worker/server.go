// Package worker runs the due-event notifier alongside the API.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"agenda/config"
	"agenda/internal/delivery"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
	"agenda/internal/usecase"
	"agenda/internal/util"

	"go.uber.org/fx"
)

type reminderWorker struct {
	cfg           *config.Config
	logger        *slog.Logger
	notifications usecase.NotificationUsecase
	reminders     usecase.ReminderUsecase

	mu     sync.Mutex
	handle service.TaskHandle
}

// ServerParams holds dependencies for the reminder worker
type ServerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Notifications usecase.NotificationUsecase
	Reminders     usecase.ReminderUsecase
}

// NewServer creates the reminder worker delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	w := &reminderWorker{
		cfg:           params.Cfg,
		logger:        params.Logger,
		notifications: params.Notifications,
		reminders:     params.Reminders,
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

// Serve prepares the notification gateway and starts the recurring scan.
// A gateway that fails to initialize is logged; scans still run so the
// next successful delivery picks up due events.
func (w *reminderWorker) Serve(ctx context.Context) error {
	if err := w.notifications.Initialize(ctx); err != nil {
		w.logger.Warn("Notification gateway initialization failed", slog.Any("error", err))
	}

	if !w.cfg.Reminder.Enabled {
		w.logger.Info("Due event notifier disabled")

		return nil
	}

	handle, err := w.reminders.Start(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	w.mu.Lock()
	w.handle = handle
	w.mu.Unlock()

	w.logger.Info("Due event notifier started", slog.String("interval", util.FormatDuration(w.cfg.Reminder.Interval)))

	return nil
}

func (w *reminderWorker) stop(_ context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.handle != nil {
		w.logger.Info("Stopping due event notifier")
		w.handle.Stop()
		w.handle = nil
	}

	return nil
}

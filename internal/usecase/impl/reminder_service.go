package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/schedule"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
	"agenda/internal/usecase"

	"go.uber.org/fx"
)

const (
	dueNotificationTitle     = "Event Due Now!"
	immediateNotificationFmt = "immediate-%s"
)

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	EventRepo     repository.EventRepository
	Notifications usecase.NotificationUsecase
	Clock         service.Clock
	Scheduler     service.TaskScheduler
	Config        *config.Config
	Logger        *slog.Logger
}

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	eventRepo     repository.EventRepository
	notifications usecase.NotificationUsecase
	clock         service.Clock
	scheduler     service.TaskScheduler
	interval      time.Duration
	logger        *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		eventRepo:     params.EventRepo,
		notifications: params.Notifications,
		clock:         params.Clock,
		scheduler:     params.Scheduler,
		interval:      params.Config.Reminder.Interval,
		logger:        params.Logger.With(slog.String("component", "reminder")),
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// ScanOnce announces each pending due event and flags it as notified.
// An event whose notification cannot be fired stays unflagged for the next scan.
func (srv *reminderService) ScanOnce(ctx context.Context) (*usecase.ScanResult, error) {
	events, err := srv.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	now := srv.clock.Now()
	result := &usecase.ScanResult{
		ScanID:  deliverycontext.TraceID(ctx),
		Checked: len(events),
	}

	for _, event := range events {
		if !schedule.IsPendingAnnouncement(event, now) {
			continue
		}
		result.Due++

		if err := srv.announce(ctx, event); err != nil {
			result.Failed++
			srv.log(ctx).Error("Failed to announce due event",
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)

			continue
		}
		result.Notified++
	}

	if result.Due > 0 {
		srv.log(ctx).Info("Due events announced",
			slog.Int("checked", result.Checked),
			slog.Int("due", result.Due),
			slog.Int("notified", result.Notified),
			slog.Int("failed", result.Failed),
		)
	}

	return result, nil
}

func (srv *reminderService) announce(ctx context.Context, event *entity.Event) error {
	content := entity.NotificationContent{
		Title: dueNotificationTitle,
		Body:  notificationBody(event),
	}
	options := entity.NotificationOptions{Sound: true, Vibrate: true}

	if err := srv.notifications.NotifyNow(ctx, immediateNotificationID(event.ID), content, options); err != nil {
		return err
	}

	if err := srv.notifications.Speak(ctx, dueAnnouncement(event), ""); err != nil {
		srv.log(ctx).Warn("Failed to speak due event", slog.String("event_id", event.ID), slog.Any("error", err))
	}

	updated := *event
	updated.NotificationSent = true
	if err := srv.eventRepo.SaveEvent(ctx, &updated); err != nil {
		return errors.Wrap(err, "failed to flag event as notified")
	}

	return nil
}

// Start schedules ScanOnce every interval, each run under its own scan id.
// Scan errors are logged and the schedule continues.
func (srv *reminderService) Start(ctx context.Context) (service.TaskHandle, error) {
	handle, err := srv.scheduler.Every(srv.interval, func(taskCtx context.Context) {
		taskCtx = deliverycontext.StartScan(taskCtx, srv.logger)
		if _, err := srv.ScanOnce(taskCtx); err != nil {
			srv.log(taskCtx).Error("Due event scan failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start due event scan")
	}

	srv.log(ctx).Info("Due event notifier started", slog.Duration("interval", srv.interval))

	return handle, nil
}

func immediateNotificationID(eventID string) string {
	return fmt.Sprintf(immediateNotificationFmt, eventID)
}

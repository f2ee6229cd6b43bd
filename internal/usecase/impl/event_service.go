// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/schedule"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const scheduledNotificationTitle = "Scheduled Event"

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo     repository.EventRepository
	GroupRepo     repository.GroupRepository
	UserRepo      repository.UserRepository
	SettingsRepo  repository.SettingsRepository
	Notifications usecase.NotificationUsecase
	Calendar      service.CalendarExporter
	Clock         service.Clock
	Logger        *slog.Logger
}

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo     repository.EventRepository
	groupRepo     repository.GroupRepository
	userRepo      repository.UserRepository
	settingsRepo  repository.SettingsRepository
	notifications usecase.NotificationUsecase
	calendar      service.CalendarExporter
	clock         service.Clock
	logger        *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:     params.EventRepo,
		groupRepo:     params.GroupRepo,
		userRepo:      params.UserRepo,
		settingsRepo:  params.SettingsRepo,
		notifications: params.Notifications,
		calendar:      params.Calendar,
		clock:         params.Clock,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateEvent validates the input in the order the form does, stores the
// event and schedules its reminder. A scheduling failure does not undo the save.
func (srv *eventService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrEventTitleRequired
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerrors.ErrEventDescriptionRequired
	}

	now := srv.clock.Now()
	if !input.ScheduledFor.After(now) {
		return nil, domainerrors.ErrEventTimeNotFuture
	}

	groupID, err := srv.resolveGroup(ctx, strings.TrimSpace(input.GroupID))
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	event := &entity.Event{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		ScheduledFor: input.ScheduledFor,
		CreatedAt:    now,
		CreatedBy:    user.ID,
		GroupID:      groupID,
	}

	if err := srv.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to save event")
	}

	srv.scheduleReminder(ctx, event)

	srv.log(ctx).Info("Event created",
		slog.String("event_id", event.ID),
		slog.String("group_id", event.GroupID),
		slog.Time("scheduled_for", event.ScheduledFor),
	)

	return event, nil
}

// resolveGroup applies the group rules: a group is required once any exist,
// and a named group must exist. Empty means personal.
func (srv *eventService) resolveGroup(ctx context.Context, groupID string) (string, error) {
	if groupID == entity.PersonalGroupID {
		return groupID, nil
	}

	groups, err := srv.groupRepo.FindAllGroups(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to find groups")
	}

	if groupID == "" {
		if len(groups) > 0 {
			return "", domainerrors.ErrEventGroupRequired
		}

		return entity.PersonalGroupID, nil
	}

	for _, g := range groups {
		if g.ID == groupID {
			return groupID, nil
		}
	}

	return "", domainerrors.ErrGroupNotFound
}

func (srv *eventService) scheduleReminder(ctx context.Context, event *entity.Event) {
	settings, err := srv.settingsRepo.FindSettings(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load settings, scheduling with defaults", slog.Any("error", err))
		settings = entity.DefaultNotificationSettings()
	}

	content := entity.NotificationContent{
		Title: scheduledNotificationTitle,
		Body:  notificationBody(event),
		Data: map[string]any{
			"eventId":      event.ID,
			"voiceEnabled": settings.VoiceEnabled,
			"voiceMessage": dueAnnouncement(event),
		},
	}
	options := entity.NotificationOptions{
		Sound:   settings.SoundEnabled,
		Vibrate: settings.VibrationEnabled,
	}

	if err := srv.notifications.ScheduleNotification(ctx, event.ID, content, event.ScheduledFor, options); err != nil {
		srv.log(ctx).Error("Failed to schedule event notification",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

// ListEvents returns all events by date, optionally only those on day.
func (srv *eventService) ListEvents(ctx context.Context, day *time.Time) ([]*entity.EventView, error) {
	events, err := srv.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	events = schedule.SortByDate(events)
	if day != nil {
		events = schedule.FilterByDay(events, *day)
	}

	return schedule.Annotate(events, srv.clock.Now()), nil
}

// CompleteEvent marks the event completed. Completing it again changes nothing.
func (srv *eventService) CompleteEvent(ctx context.Context, id string) (*entity.Event, error) {
	event, err := srv.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.IsCompleted {
		return event, nil
	}

	event.IsCompleted = true
	if err := srv.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to save event")
	}

	srv.cancelReminder(ctx, id)
	srv.log(ctx).Info("Event completed", slog.String("event_id", id))

	return event, nil
}

// DeleteEvent removes the event; unknown ids are accepted.
func (srv *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := srv.eventRepo.DeleteEvent(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete event")
	}

	srv.cancelReminder(ctx, id)
	srv.log(ctx).Info("Event deleted", slog.String("event_id", id))

	return nil
}

func (srv *eventService) ExportCalendar(ctx context.Context) ([]byte, error) {
	events, err := srv.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	groups, err := srv.groupRepo.FindAllGroups(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find groups")
	}

	doc, err := srv.calendar.Export(schedule.SortByDate(events), groups)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export calendar")
	}

	return doc, nil
}

func (srv *eventService) findEvent(ctx context.Context, id string) (*entity.Event, error) {
	events, err := srv.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}

	return nil, domainerrors.ErrEventNotFound
}

func (srv *eventService) cancelReminder(ctx context.Context, id string) {
	if err := srv.notifications.CancelNotification(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to cancel event notification",
			slog.String("event_id", id),
			slog.Any("error", err),
		)
	}
}

// notificationBody is the "<title> - <description>" line shared by both notifications.
func notificationBody(event *entity.Event) string {
	return fmt.Sprintf("%s - %s", event.Title, event.Description)
}

func dueAnnouncement(event *entity.Event) string {
	return fmt.Sprintf(`Attention! Your scheduled event "%s" is now due. %s`, event.Title, event.Description)
}

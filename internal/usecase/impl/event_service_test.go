package impl

import (
	"context"
	"testing"
	"time"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/errors"
	mockRepo "agenda/internal/mocks/repository"
	mockSvc "agenda/internal/mocks/service"
	mockUC "agenda/internal/mocks/usecase"
	"agenda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service       usecase.EventUsecase
	eventRepo     *mockRepo.MockEventRepository
	groupRepo     *mockRepo.MockGroupRepository
	userRepo      *mockRepo.MockUserRepository
	settingsRepo  *mockRepo.MockSettingsRepository
	notifications *mockUC.MockNotificationUsecase
	calendar      *mockSvc.MockCalendarExporter
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	fx := eventServiceFixtures{
		eventRepo:     mockRepo.NewMockEventRepository(t),
		groupRepo:     mockRepo.NewMockGroupRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		settingsRepo:  mockRepo.NewMockSettingsRepository(t),
		notifications: mockUC.NewMockNotificationUsecase(t),
		calendar:      mockSvc.NewMockCalendarExporter(t),
	}

	fx.service = NewEventService(EventServiceParams{
		EventRepo:     fx.eventRepo,
		GroupRepo:     fx.groupRepo,
		UserRepo:      fx.userRepo,
		SettingsRepo:  fx.settingsRepo,
		Notifications: fx.notifications,
		Calendar:      fx.calendar,
		Clock:         newFixedClock(t, testNow),
		Logger:        newDiscardLogger(),
	})

	return fx
}

var testUser = &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Groups: []string{}}

func TestEventService_CreateEvent_Success(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	at := testNow.Add(time.Hour)

	fx.groupRepo.EXPECT().FindAllGroups(ctx).Return([]*entity.Group{}, nil)
	fx.userRepo.EXPECT().FindUser(ctx).Return(testUser, nil)
	fx.eventRepo.EXPECT().SaveEvent(ctx, mock.AnythingOfType("*entity.Event")).Return(nil)
	fx.settingsRepo.EXPECT().FindSettings(ctx).Return(&entity.NotificationSettings{
		VoiceEnabled: true, SoundEnabled: false, VibrationEnabled: true, VoiceLanguage: "en-US",
	}, nil)

	var scheduled entity.NotificationContent
	var options entity.NotificationOptions
	fx.notifications.EXPECT().
		ScheduleNotification(ctx, mock.AnythingOfType("string"), mock.Anything, at, mock.Anything).
		Run(func(_ context.Context, _ string, content entity.NotificationContent, _ time.Time, opts entity.NotificationOptions) {
			scheduled = content
			options = opts
		}).
		Return(nil)

	event, err := fx.service.CreateEvent(ctx, &usecase.CreateEventInput{
		Title:        "  Pay rent ",
		Description:  " Transfer to landlord ",
		ScheduledFor: at,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Pay rent", event.Title)
	assert.Equal(t, "Transfer to landlord", event.Description)
	assert.Equal(t, entity.PersonalGroupID, event.GroupID)
	assert.Equal(t, "u1", event.CreatedBy)
	assert.Equal(t, testNow, event.CreatedAt)
	assert.False(t, event.IsCompleted)
	assert.False(t, event.NotificationSent)

	assert.Equal(t, "Scheduled Event", scheduled.Title)
	assert.Equal(t, "Pay rent - Transfer to landlord", scheduled.Body)
	assert.Equal(t, event.ID, scheduled.Data["eventId"])
	assert.Equal(t, true, scheduled.Data["voiceEnabled"])
	assert.Equal(t, `Attention! Your scheduled event "Pay rent" is now due. Transfer to landlord`, scheduled.Data["voiceMessage"])
	assert.Equal(t, entity.NotificationOptions{Sound: false, Vibrate: true}, options)
}

func TestEventService_CreateEvent_SchedulingFailureIsSwallowed(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().FindAllGroups(ctx).Return([]*entity.Group{{ID: "g1"}}, nil)
	fx.userRepo.EXPECT().FindUser(ctx).Return(testUser, nil)
	fx.eventRepo.EXPECT().SaveEvent(ctx, mock.Anything).Return(nil)
	fx.settingsRepo.EXPECT().FindSettings(ctx).Return(nil, errors.New("boom"))
	fx.notifications.EXPECT().
		ScheduleNotification(ctx, mock.Anything, mock.Anything, mock.Anything, entity.NotificationOptions{Sound: true, Vibrate: true}).
		Return(errors.New("scheduler stopped"))

	event, err := fx.service.CreateEvent(ctx, &usecase.CreateEventInput{
		Title:        "Standup",
		Description:  "Daily sync",
		ScheduledFor: testNow.Add(time.Minute),
		GroupID:      "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, "g1", event.GroupID)
}

func TestEventService_CreateEvent_ValidationErrors(t *testing.T) {
	future := testNow.Add(time.Hour)

	tests := []struct {
		name    string
		input   *usecase.CreateEventInput
		groups  []*entity.Group
		setup   bool
		wantErr error
	}{
		{
			name:    "blank title",
			input:   &usecase.CreateEventInput{Title: "   ", Description: "d", ScheduledFor: future},
			wantErr: domainerrors.ErrEventTitleRequired,
		},
		{
			name:    "blank description",
			input:   &usecase.CreateEventInput{Title: "t", Description: "", ScheduledFor: future},
			wantErr: domainerrors.ErrEventDescriptionRequired,
		},
		{
			name:    "time equal to now",
			input:   &usecase.CreateEventInput{Title: "t", Description: "d", ScheduledFor: testNow},
			wantErr: domainerrors.ErrEventTimeNotFuture,
		},
		{
			name:    "past time",
			input:   &usecase.CreateEventInput{Title: "t", Description: "d", ScheduledFor: testNow.Add(-time.Second)},
			wantErr: domainerrors.ErrEventTimeNotFuture,
		},
		{
			name:    "group required when groups exist",
			input:   &usecase.CreateEventInput{Title: "t", Description: "d", ScheduledFor: future},
			groups:  []*entity.Group{{ID: "g1"}},
			setup:   true,
			wantErr: domainerrors.ErrEventGroupRequired,
		},
		{
			name:    "unknown group",
			input:   &usecase.CreateEventInput{Title: "t", Description: "d", ScheduledFor: future, GroupID: "missing"},
			groups:  []*entity.Group{{ID: "g1"}},
			setup:   true,
			wantErr: domainerrors.ErrGroupNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestEventService(t)
			if tt.setup {
				fx.groupRepo.EXPECT().FindAllGroups(mock.Anything).Return(tt.groups, nil)
			}

			event, err := fx.service.CreateEvent(context.Background(), tt.input)

			assert.Nil(t, event)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestEventService_CreateEvent_NoUser(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUser(ctx).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateEvent(ctx, &usecase.CreateEventInput{
		Title: "t", Description: "d", ScheduledFor: testNow.Add(time.Hour), GroupID: entity.PersonalGroupID,
	})

	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestEventService_CreateEvent_SaveFails(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().FindAllGroups(ctx).Return(nil, nil)
	fx.userRepo.EXPECT().FindUser(ctx).Return(testUser, nil)
	fx.eventRepo.EXPECT().SaveEvent(ctx, mock.Anything).Return(domainerrors.NewStorageError(errors.New("disk full"), "events"))

	_, err := fx.service.CreateEvent(ctx, &usecase.CreateEventInput{
		Title: "t", Description: "d", ScheduledFor: testNow.Add(time.Hour),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save event")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_WRITE_FAILED", appErr.ErrorCode())
}

func TestEventService_ListEvents(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	tomorrow := testNow.Add(24 * time.Hour)
	events := []*entity.Event{
		{ID: "later", ScheduledFor: tomorrow},
		{ID: "done", ScheduledFor: testNow.Add(-time.Hour), IsCompleted: true},
		{ID: "due", ScheduledFor: testNow.Add(30 * time.Second)},
		{ID: "soon", ScheduledFor: testNow.Add(2 * time.Hour)},
	}
	fx.eventRepo.EXPECT().FindAllEvents(ctx).Return(events, nil).Twice()

	all, err := fx.service.ListEvents(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "done", all[0].ID)
	assert.Equal(t, entity.StatusCompleted, all[0].Status)
	assert.Equal(t, entity.StatusDue, all[1].Status)
	assert.Equal(t, entity.StatusUpcoming, all[2].Status)
	assert.Equal(t, "later", all[3].ID)

	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	filtered, err := fx.service.ListEvents(ctx, &day)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "later", filtered[0].ID)
}

func TestEventService_CompleteEvent(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	event := &entity.Event{ID: "e1", ScheduledFor: testNow.Add(time.Hour)}
	fx.eventRepo.EXPECT().FindAllEvents(ctx).Return([]*entity.Event{event}, nil)
	fx.eventRepo.EXPECT().SaveEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool {
		return e.ID == "e1" && e.IsCompleted
	})).Return(nil).Once()
	fx.notifications.EXPECT().CancelNotification(ctx, "e1").Return(nil).Once()

	completed, err := fx.service.CompleteEvent(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)

	// already completed: no second write or cancel
	again, err := fx.service.CompleteEvent(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, again.IsCompleted)
}

func TestEventService_CompleteEvent_NotFound(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindAllEvents(ctx).Return([]*entity.Event{}, nil)

	_, err := fx.service.CompleteEvent(ctx, "nope")
	assert.Equal(t, domainerrors.ErrEventNotFound, err)
}

func TestEventService_DeleteEvent(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().DeleteEvent(ctx, "e1").Return(nil)
	fx.notifications.EXPECT().CancelNotification(ctx, "e1").Return(errors.New("gone"))

	assert.NoError(t, fx.service.DeleteEvent(ctx, "e1"))
}

func TestEventService_DeleteEvent_StorageError(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().DeleteEvent(ctx, "e1").Return(errors.New("write failed"))

	err := fx.service.DeleteEvent(ctx, "e1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete event")
}

func TestEventService_ExportCalendar(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	events := []*entity.Event{
		{ID: "b", ScheduledFor: testNow.Add(2 * time.Hour)},
		{ID: "a", ScheduledFor: testNow.Add(time.Hour)},
	}
	groups := []*entity.Group{{ID: "g1", Name: "Team"}}

	fx.eventRepo.EXPECT().FindAllEvents(ctx).Return(events, nil)
	fx.groupRepo.EXPECT().FindAllGroups(ctx).Return(groups, nil)
	fx.calendar.EXPECT().
		Export(mock.MatchedBy(func(sorted []*entity.Event) bool {
			return len(sorted) == 2 && sorted[0].ID == "a"
		}), groups).
		Return([]byte("BEGIN:VCALENDAR"), nil)

	doc, err := fx.service.ExportCalendar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR", string(doc))
}

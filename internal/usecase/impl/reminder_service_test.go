package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	"agenda/internal/errors"
	mockRepo "agenda/internal/mocks/repository"
	mockSvc "agenda/internal/mocks/service"
	mockUC "agenda/internal/mocks/usecase"
	"agenda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reminderServiceFixtures holds all test dependencies for the due-event notifier tests.
type reminderServiceFixtures struct {
	service       usecase.ReminderUsecase
	eventRepo     *mockRepo.MockEventRepository
	notifications *mockUC.MockNotificationUsecase
	scheduler     *mockSvc.MockTaskScheduler
}

func createTestReminderService(t *testing.T, now time.Time) reminderServiceFixtures {
	fx := reminderServiceFixtures{
		eventRepo:     mockRepo.NewMockEventRepository(t),
		notifications: mockUC.NewMockNotificationUsecase(t),
		scheduler:     mockSvc.NewMockTaskScheduler(t),
	}

	fx.service = NewReminderService(ReminderServiceParams{
		EventRepo:     fx.eventRepo,
		Notifications: fx.notifications,
		Clock:         newFixedClock(t, now),
		Scheduler:     fx.scheduler,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return fx
}

// memoryEvents backs the event repository mock with a slice so scans observe earlier writes.
type memoryEvents struct {
	mu     sync.Mutex
	events []*entity.Event
}

func (m *memoryEvents) wire(repo *mockRepo.MockEventRepository) {
	repo.EXPECT().FindAllEvents(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.Event, error) {
		m.mu.Lock()
		defer m.mu.Unlock()

		out := make([]*entity.Event, 0, len(m.events))
		for _, e := range m.events {
			copied := *e
			out = append(out, &copied)
		}

		return out, nil
	}).Maybe()

	repo.EXPECT().SaveEvent(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, event *entity.Event) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		for i, e := range m.events {
			if e.ID == event.ID {
				m.events[i] = event
			}
		}

		return nil
	}).Maybe()
}

func TestReminderService_PayRentExample(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)
	ctx := context.Background()

	store := &memoryEvents{events: []*entity.Event{{
		ID:           "e1",
		Title:        "Pay rent",
		Description:  "Transfer to landlord",
		ScheduledFor: now.Add(30 * time.Second),
	}}}
	store.wire(fx.eventRepo)

	fx.notifications.EXPECT().
		NotifyNow(ctx, "immediate-e1", entity.NotificationContent{
			Title: "Event Due Now!",
			Body:  "Pay rent - Transfer to landlord",
		}, entity.NotificationOptions{Sound: true, Vibrate: true}).
		Return(nil).
		Once()
	fx.notifications.EXPECT().
		Speak(ctx, `Attention! Your scheduled event "Pay rent" is now due. Transfer to landlord`, "").
		Return(nil).
		Once()

	result, err := fx.service.ScanOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ScanResult{Checked: 1, Due: 1, Notified: 1}, result)
	assert.True(t, store.events[0].NotificationSent)

	// a second scan finds nothing left to announce
	result, err = fx.service.ScanOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ScanResult{Checked: 1}, result)
}

func TestReminderService_SkipsIneligibleEvents(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	store := &memoryEvents{events: []*entity.Event{
		{ID: "completed", ScheduledFor: now, IsCompleted: true},
		{ID: "sent", ScheduledFor: now, NotificationSent: true},
		{ID: "far", ScheduledFor: now.Add(61 * time.Second)},
		{ID: "old", ScheduledFor: now.Add(-61 * time.Second)},
	}}
	store.wire(fx.eventRepo)

	result, err := fx.service.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &usecase.ScanResult{Checked: 4}, result)
}

func TestReminderService_WindowEdgesAreInclusive(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)
	ctx := context.Background()

	store := &memoryEvents{events: []*entity.Event{
		{ID: "early", ScheduledFor: now.Add(time.Minute)},
		{ID: "late", ScheduledFor: now.Add(-time.Minute)},
	}}
	store.wire(fx.eventRepo)

	fx.notifications.EXPECT().NotifyNow(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
	fx.notifications.EXPECT().Speak(ctx, mock.Anything, "").Return(nil).Twice()

	result, err := fx.service.ScanOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Notified)
}

func TestReminderService_FireFailureLeavesEventUnflagged(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)
	ctx := context.Background()

	store := &memoryEvents{events: []*entity.Event{{ID: "e1", Title: "t", ScheduledFor: now}}}
	store.wire(fx.eventRepo)

	fx.notifications.EXPECT().NotifyNow(ctx, "immediate-e1", mock.Anything, mock.Anything).Return(errors.New("push down")).Once()

	result, err := fx.service.ScanOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ScanResult{Checked: 1, Due: 1, Failed: 1}, result)
	assert.False(t, store.events[0].NotificationSent)
}

func TestReminderService_SpeechFailureStillFlags(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)
	ctx := context.Background()

	store := &memoryEvents{events: []*entity.Event{{ID: "e1", Title: "t", ScheduledFor: now}}}
	store.wire(fx.eventRepo)

	fx.notifications.EXPECT().NotifyNow(ctx, "immediate-e1", mock.Anything, mock.Anything).Return(nil).Once()
	fx.notifications.EXPECT().Speak(ctx, mock.Anything, "").Return(errors.New("tts down")).Once()

	result, err := fx.service.ScanOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
	assert.True(t, store.events[0].NotificationSent)
}

func TestReminderService_ReadFailure(t *testing.T) {
	fx := createTestReminderService(t, testNow)

	fx.eventRepo.EXPECT().FindAllEvents(mock.Anything).Return(nil, errors.New("backend closed"))

	_, err := fx.service.ScanOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find events")
}

func TestReminderService_Start(t *testing.T) {
	fx := createTestReminderService(t, testNow)
	ctx := context.Background()

	var scanIDs []string
	fx.eventRepo.EXPECT().FindAllEvents(mock.Anything).
		RunAndReturn(func(scanCtx context.Context) ([]*entity.Event, error) {
			scanIDs = append(scanIDs, deliverycontext.TraceID(scanCtx))

			return nil, nil
		}).Twice()

	handle := mockSvc.NewMockTaskHandle(t)
	var task func(context.Context)
	fx.scheduler.EXPECT().
		Every(30*time.Second, mock.AnythingOfType("func(context.Context)")).
		Run(func(_ time.Duration, fn func(context.Context)) { task = fn }).
		Return(handle, nil)

	got, err := fx.service.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, handle, got)

	// each run of the registered task scans under its own id
	require.NotNil(t, task)
	task(ctx)
	task(ctx)

	require.Len(t, scanIDs, 2)
	assert.NotEmpty(t, scanIDs[0])
	assert.NotEmpty(t, scanIDs[1])
	assert.NotEqual(t, scanIDs[0], scanIDs[1])
}

func TestReminderService_ScanOnceReportsScanID(t *testing.T) {
	fx := createTestReminderService(t, testNow)
	store := &memoryEvents{}
	store.wire(fx.eventRepo)

	ctx := deliverycontext.StartScan(context.Background(), newDiscardLogger())

	result, err := fx.service.ScanOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, deliverycontext.TraceID(ctx), result.ScanID)
	assert.Zero(t, result.Checked)
}

func TestReminderService_StartFails(t *testing.T) {
	fx := createTestReminderService(t, testNow)

	fx.scheduler.EXPECT().Every(mock.Anything, mock.Anything).Return(nil, errors.New("bad interval"))

	_, err := fx.service.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start due event scan")
}

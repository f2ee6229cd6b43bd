package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
	mockSvc "agenda/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testContent = entity.NotificationContent{Title: "Scheduled Event", Body: "Pay rent - Transfer to landlord"}

func TestLocalScheduler_FiresAtScheduledTime(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	s := newLocalScheduler(push, newDiscardLogger())
	require.NoError(t, s.CreateChannel(context.Background(), entity.NotificationChannelID, "Scheduled Events"))

	delivered := make(chan entity.NotificationOptions, 1)
	push.EXPECT().
		SendNotification(mock.Anything, "event-1", testContent, mock.AnythingOfType("entity.NotificationOptions")).
		Run(func(_ context.Context, _ string, _ entity.NotificationContent, options entity.NotificationOptions) {
			delivered <- options
		}).
		Return(&service.PushResult{SuccessCount: 1}, nil).
		Once()

	err := s.ScheduleAt(context.Background(), "event-1", testContent, time.Now().Add(50*time.Millisecond), entity.NotificationOptions{Sound: true})
	require.NoError(t, err)
	assert.Len(t, s.Pending(), 1)

	select {
	case options := <-delivered:
		assert.Equal(t, entity.NotificationChannelID, options.ChannelID)
		assert.True(t, options.Sound)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
	}

	require.Eventually(t, func() bool { return len(s.Pending()) == 0 }, time.Second, 10*time.Millisecond)
}

func TestLocalScheduler_PastTimeFiresImmediately(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	s := newLocalScheduler(push, newDiscardLogger())

	delivered := make(chan struct{})
	push.EXPECT().
		SendNotification(mock.Anything, "late", testContent, entity.NotificationOptions{}).
		Run(func(context.Context, string, entity.NotificationContent, entity.NotificationOptions) { close(delivered) }).
		Return(&service.PushResult{SuccessCount: 1}, nil).
		Once()

	require.NoError(t, s.ScheduleAt(context.Background(), "late", testContent, time.Now().Add(-time.Hour), entity.NotificationOptions{}))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("past notification was not delivered")
	}
}

func TestLocalScheduler_CancelIsIdempotent(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	s := newLocalScheduler(push, newDiscardLogger())
	ctx := context.Background()

	require.NoError(t, s.ScheduleAt(ctx, "event-1", testContent, time.Now().Add(100*time.Millisecond), entity.NotificationOptions{}))
	require.NoError(t, s.Cancel(ctx, "event-1"))
	require.NoError(t, s.Cancel(ctx, "event-1"))
	require.NoError(t, s.Cancel(ctx, "never-scheduled"))

	assert.Empty(t, s.Pending())
	// the push mock fails the test if the cancelled timer still fires
	time.Sleep(200 * time.Millisecond)
}

func TestLocalScheduler_RescheduleReplacesPending(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	s := newLocalScheduler(push, newDiscardLogger())
	ctx := context.Background()

	first := time.Now().Add(time.Hour)
	second := time.Now().Add(2 * time.Hour)
	require.NoError(t, s.ScheduleAt(ctx, "event-1", testContent, first, entity.NotificationOptions{}))
	require.NoError(t, s.ScheduleAt(ctx, "event-1", testContent, second, entity.NotificationOptions{}))

	pending := s.Pending()
	require.Len(t, pending, 1)
	assert.True(t, pending[0].At.Equal(second))

	require.NoError(t, s.stop(ctx))
	assert.Empty(t, s.Pending())
	assert.Error(t, s.ScheduleAt(ctx, "event-2", testContent, second, entity.NotificationOptions{}))
}

func TestLocalScheduler_FireNow(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	s := newLocalScheduler(push, newDiscardLogger())
	ctx := context.Background()
	options := entity.NotificationOptions{Sound: true, Vibrate: true, ChannelID: "custom"}

	push.EXPECT().
		SendNotification(ctx, "immediate-e1", testContent, options).
		Return(&service.PushResult{SuccessCount: 1}, nil).
		Once()
	require.NoError(t, s.FireNow(ctx, "immediate-e1", testContent, options))

	push.EXPECT().
		SendNotification(ctx, "immediate-e2", testContent, options).
		Return(nil, errors.New("fcm unavailable")).
		Once()
	err := s.FireNow(ctx, "immediate-e2", testContent, options)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deliver notification immediate-e2")
}

func TestLocalScheduler_CreateChannelRequiresID(t *testing.T) {
	s := newLocalScheduler(mockSvc.NewMockPushService(t), newDiscardLogger())

	assert.Error(t, s.CreateChannel(context.Background(), "", "name"))
	assert.NoError(t, s.RequestPermissions(context.Background()))
}

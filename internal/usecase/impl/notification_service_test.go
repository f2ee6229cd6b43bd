package impl

import (
	"context"
	"testing"
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/errors"
	mockRepo "agenda/internal/mocks/repository"
	mockSvc "agenda/internal/mocks/service"
	"agenda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for the notification gateway tests.
type notificationServiceFixtures struct {
	service      usecase.NotificationUsecase
	scheduler    *mockSvc.MockNotificationScheduler
	speech       *mockSvc.MockSpeechEngine
	settingsRepo *mockRepo.MockSettingsRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		scheduler:    mockSvc.NewMockNotificationScheduler(t),
		speech:       mockSvc.NewMockSpeechEngine(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
	}

	fx.service = NewNotificationService(NotificationServiceParams{
		Scheduler:    fx.scheduler,
		Speech:       fx.speech,
		SettingsRepo: fx.settingsRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func voiceSettings(enabled bool) *entity.NotificationSettings {
	settings := entity.DefaultNotificationSettings()
	settings.VoiceEnabled = enabled
	settings.VoiceLanguage = "fr-FR"

	return settings
}

func TestNotificationService_Initialize_Idempotent(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.scheduler.EXPECT().RequestPermissions(ctx).Return(nil).Once()
	fx.scheduler.EXPECT().CreateChannel(ctx, "scheduling-app-channel", "Scheduling App Notifications").Return(nil).Once()
	fx.speech.EXPECT().SetLanguage("en-US").Return(nil).Once()
	fx.speech.EXPECT().SetRate(0.5).Return(nil).Once()
	fx.speech.EXPECT().SetPitch(1.0).Return(nil).Once()

	require.NoError(t, fx.service.Initialize(ctx))
	require.NoError(t, fx.service.Initialize(ctx))
}

func TestNotificationService_Initialize_RetriesAfterFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.scheduler.EXPECT().RequestPermissions(ctx).Return(errors.New("denied")).Once()
	err := fx.service.Initialize(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to request notification permissions")

	fx.scheduler.EXPECT().RequestPermissions(ctx).Return(nil).Once()
	fx.scheduler.EXPECT().CreateChannel(ctx, mock.Anything, mock.Anything).Return(nil).Once()
	// speech problems do not block initialization
	fx.speech.EXPECT().SetLanguage("en-US").Return(errors.New("no tts")).Once()

	require.NoError(t, fx.service.Initialize(ctx))
}

func TestNotificationService_ScheduleAndCancel(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	at := testNow.Add(time.Hour)
	content := entity.NotificationContent{Title: "Scheduled Event", Body: "b"}

	fx.scheduler.EXPECT().
		ScheduleAt(ctx, "e1", content, at, entity.NotificationOptions{Sound: true, ChannelID: "scheduling-app-channel"}).
		Return(nil)
	require.NoError(t, fx.service.ScheduleNotification(ctx, "e1", content, at, entity.NotificationOptions{Sound: true}))

	fx.scheduler.EXPECT().Cancel(ctx, "e1").Return(nil)
	require.NoError(t, fx.service.CancelNotification(ctx, "e1"))

	fx.scheduler.EXPECT().Cancel(ctx, "e2").Return(errors.New("stopped"))
	err := fx.service.CancelNotification(ctx, "e2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to cancel notification e2")
}

func TestNotificationService_NotifyNow(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	content := entity.NotificationContent{Title: "Event Due Now!"}

	fx.scheduler.EXPECT().
		FireNow(ctx, "immediate-e1", content, entity.NotificationOptions{Sound: true, Vibrate: true, ChannelID: "custom"}).
		Return(nil)

	require.NoError(t, fx.service.NotifyNow(ctx, "immediate-e1", content, entity.NotificationOptions{Sound: true, Vibrate: true, ChannelID: "custom"}))
}

func TestNotificationService_Speak(t *testing.T) {
	t.Run("uses settings language", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.settingsRepo.EXPECT().FindSettings(ctx).Return(voiceSettings(true), nil)
		fx.speech.EXPECT().Stop().Return(nil)
		fx.speech.EXPECT().SetLanguage("fr-FR").Return(nil)
		fx.speech.EXPECT().Speak(ctx, "hello").Return(nil)

		require.NoError(t, fx.service.Speak(ctx, "hello", ""))
	})

	t.Run("explicit language wins", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.settingsRepo.EXPECT().FindSettings(ctx).Return(voiceSettings(true), nil)
		fx.speech.EXPECT().Stop().Return(nil)
		fx.speech.EXPECT().SetLanguage("de-DE").Return(nil)
		fx.speech.EXPECT().Speak(ctx, "hallo").Return(nil)

		require.NoError(t, fx.service.Speak(ctx, "hallo", "de-DE"))
	})

	t.Run("voice disabled is a no-op", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.settingsRepo.EXPECT().FindSettings(ctx).Return(voiceSettings(false), nil)

		require.NoError(t, fx.service.Speak(ctx, "hello", ""))
	})

	t.Run("engine failure is returned", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.settingsRepo.EXPECT().FindSettings(ctx).Return(voiceSettings(true), nil)
		fx.speech.EXPECT().Stop().Return(nil)
		fx.speech.EXPECT().SetLanguage("fr-FR").Return(nil)
		fx.speech.EXPECT().Speak(ctx, "hello").Return(errors.New("busy"))

		err := fx.service.Speak(ctx, "hello", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to speak")
	})
}

func TestNotificationService_TestVoice(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().FindSettings(ctx).Return(voiceSettings(true), nil)
	fx.speech.EXPECT().Stop().Return(nil)
	fx.speech.EXPECT().SetLanguage("fr-FR").Return(nil)
	fx.speech.EXPECT().Speak(ctx, "This is a test voice notification from your scheduling app.").Return(nil)

	require.NoError(t, fx.service.TestVoice(ctx))
}

func TestNotificationService_Voices(t *testing.T) {
	ctx := context.Background()

	t.Run("engine voices", func(t *testing.T) {
		fx := createTestNotificationService(t)
		voices := []entity.Voice{{ID: "v1", Name: "Voice", Language: "en-US"}}
		fx.speech.EXPECT().Voices(ctx).Return(voices, nil)

		assert.Equal(t, voices, fx.service.VoicesOrFallback(ctx))
	})

	t.Run("failure yields empty then fallback", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.speech.EXPECT().Voices(ctx).Return(nil, errors.New("no engine"))

		assert.Empty(t, fx.service.ListVoices(ctx))

		fallback := fx.service.VoicesOrFallback(ctx)
		languages := make([]string, 0, len(fallback))
		for _, v := range fallback {
			languages = append(languages, v.Language)
		}
		assert.Equal(t, []string{"en-US", "en-GB", "es-ES", "fr-FR", "de-DE"}, languages)
	})
}

func TestNotificationService_PendingNotifications(t *testing.T) {
	fx := createTestNotificationService(t)
	pending := []entity.ScheduledNotification{{ID: "e1", At: testNow}}
	fx.scheduler.EXPECT().Pending().Return(pending)

	assert.Equal(t, pending, fx.service.PendingNotifications(context.Background()))
}

package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
	"agenda/internal/usecase"

	"go.uber.org/fx"
)

const testVoiceMessage = "This is a test voice notification from your scheduling app."

// fallbackVoices is offered when the engine reports no voices.
var fallbackVoices = []entity.Voice{
	{ID: "en-US", Name: "English (US)", Language: "en-US"},
	{ID: "en-GB", Name: "English (UK)", Language: "en-GB"},
	{ID: "es-ES", Name: "Spanish", Language: "es-ES"},
	{ID: "fr-FR", Name: "French", Language: "fr-FR"},
	{ID: "de-DE", Name: "German", Language: "de-DE"},
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Scheduler    service.NotificationScheduler
	Speech       service.SpeechEngine
	SettingsRepo repository.SettingsRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	scheduler    service.NotificationScheduler
	speech       service.SpeechEngine
	settingsRepo repository.SettingsRepository
	notification config.NotificationConfig
	speechConfig config.SpeechConfig
	logger       *slog.Logger

	initMu      sync.Mutex
	initialized bool
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		scheduler:    params.Scheduler,
		speech:       params.Speech,
		settingsRepo: params.SettingsRepo,
		notification: *params.Config.Notification,
		speechConfig: *params.Config.Speech,
		logger:       params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Initialize prepares the scheduler and the speech engine. Speech setup
// failures are logged only; notifications still work without voice.
func (srv *notificationService) Initialize(ctx context.Context) error {
	srv.initMu.Lock()
	defer srv.initMu.Unlock()

	if srv.initialized {
		return nil
	}

	if err := srv.scheduler.RequestPermissions(ctx); err != nil {
		return errors.Wrap(err, "failed to request notification permissions")
	}

	if err := srv.scheduler.CreateChannel(ctx, srv.notification.ChannelID, srv.notification.ChannelName); err != nil {
		return errors.Wrap(err, "failed to create notification channel")
	}

	if err := srv.configureSpeech(); err != nil {
		srv.log(ctx).Error("Speech initialization failed", slog.Any("error", err))
	}

	srv.initialized = true
	srv.log(ctx).Info("Notification gateway initialized",
		slog.String("channel_id", srv.notification.ChannelID),
		slog.String("language", srv.speechConfig.Language),
	)

	return nil
}

func (srv *notificationService) configureSpeech() error {
	if err := srv.speech.SetLanguage(srv.speechConfig.Language); err != nil {
		return err
	}
	if err := srv.speech.SetRate(srv.speechConfig.Rate); err != nil {
		return err
	}

	return srv.speech.SetPitch(srv.speechConfig.Pitch)
}

func (srv *notificationService) ScheduleNotification(ctx context.Context, id string, content entity.NotificationContent, at time.Time, options entity.NotificationOptions) error {
	if err := srv.scheduler.ScheduleAt(ctx, id, content, at, srv.withChannel(options)); err != nil {
		return errors.Wrapf(err, "failed to schedule notification %s", id)
	}

	srv.log(ctx).Debug("Notification scheduled", slog.String("notification_id", id), slog.Time("at", at))

	return nil
}

func (srv *notificationService) CancelNotification(ctx context.Context, id string) error {
	if err := srv.scheduler.Cancel(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to cancel notification %s", id)
	}

	return nil
}

func (srv *notificationService) NotifyNow(ctx context.Context, id string, content entity.NotificationContent, options entity.NotificationOptions) error {
	if err := srv.scheduler.FireNow(ctx, id, content, srv.withChannel(options)); err != nil {
		return errors.Wrapf(err, "failed to fire notification %s", id)
	}

	return nil
}

// Speak interrupts current speech and starts message. It is a no-op when
// voice alerts are off.
func (srv *notificationService) Speak(ctx context.Context, message, language string) error {
	settings, err := srv.settingsRepo.FindSettings(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load notification settings")
	}

	if !settings.VoiceEnabled {
		return nil
	}

	if err := srv.speech.Stop(); err != nil {
		return errors.Wrap(err, "failed to stop current speech")
	}

	if language == "" {
		language = settings.VoiceLanguage
	}
	if err := srv.speech.SetLanguage(language); err != nil {
		return errors.Wrapf(err, "failed to set speech language %s", language)
	}

	if err := srv.speech.Speak(ctx, message); err != nil {
		return errors.Wrap(err, "failed to speak")
	}

	return nil
}

func (srv *notificationService) TestVoice(ctx context.Context) error {
	return srv.Speak(ctx, testVoiceMessage, "")
}

func (srv *notificationService) ListVoices(ctx context.Context) []entity.Voice {
	voices, err := srv.speech.Voices(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list voices", slog.Any("error", err))

		return []entity.Voice{}
	}

	return voices
}

func (srv *notificationService) VoicesOrFallback(ctx context.Context) []entity.Voice {
	if voices := srv.ListVoices(ctx); len(voices) > 0 {
		return voices
	}

	out := make([]entity.Voice, len(fallbackVoices))
	copy(out, fallbackVoices)

	return out
}

func (srv *notificationService) PendingNotifications(context.Context) []entity.ScheduledNotification {
	return srv.scheduler.Pending()
}

func (srv *notificationService) withChannel(options entity.NotificationOptions) entity.NotificationOptions {
	if options.ChannelID == "" {
		options.ChannelID = srv.notification.ChannelID
	}

	return options
}

package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/errors"
	"agenda/internal/usecase"
	"agenda/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	SettingsRepo  repository.SettingsRepository
	EventRepo     repository.EventRepository
	GroupRepo     repository.GroupRepository
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo      repository.UserRepository
	settingsRepo  repository.SettingsRepository
	eventRepo     repository.EventRepository
	groupRepo     repository.GroupRepository
	notifications usecase.NotificationUsecase
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:      params.UserRepo,
		settingsRepo:  params.SettingsRepo,
		eventRepo:     params.EventRepo,
		groupRepo:     params.GroupRepo,
		notifications: params.Notifications,
		validate:      validator.New(),
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Login stores the local profile. Logging in again with the same email keeps
// the user id and group list; a different email starts a fresh profile.
func (srv *profileService) Login(ctx context.Context, name, email string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrUserNameRequired
	}

	email = strings.TrimSpace(email)
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return nil, domainerrors.ErrInvalidEmail.WithDetails(email)
	}

	user := &entity.User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Groups: []string{},
	}

	existing, err := srv.userRepo.FindUser(ctx)
	switch {
	case err == nil:
		if util.NormalizeEmail(existing.Email) == util.NormalizeEmail(email) {
			user.ID = existing.ID
			user.Groups = existing.Groups
		}
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := srv.userRepo.SaveUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID))

	return user, nil
}

func (srv *profileService) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := srv.userRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *profileService) GetSettings(ctx context.Context) (*entity.NotificationSettings, error) {
	settings, err := srv.settingsRepo.FindSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find settings")
	}

	return settings, nil
}

// UpdateSettings overwrites the settings. An empty voice language falls back to the default.
func (srv *profileService) UpdateSettings(ctx context.Context, settings *entity.NotificationSettings) (*entity.NotificationSettings, error) {
	updated := *settings
	updated.VoiceLanguage = strings.TrimSpace(updated.VoiceLanguage)
	if updated.VoiceLanguage == "" {
		updated.VoiceLanguage = entity.DefaultVoiceLanguage
	}

	if err := srv.settingsRepo.SaveSettings(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "failed to save settings")
	}

	srv.log(ctx).Info("Notification settings updated",
		slog.Bool("voice_enabled", updated.VoiceEnabled),
		slog.Bool("sound_enabled", updated.SoundEnabled),
		slog.Bool("vibration_enabled", updated.VibrationEnabled),
		slog.String("voice_language", updated.VoiceLanguage),
	)

	return &updated, nil
}

// ResetAll cancels every event reminder, empties events and groups and
// removes the profile. Settings survive a reset.
func (srv *profileService) ResetAll(ctx context.Context) error {
	events, err := srv.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to find events")
	}

	for _, event := range events {
		if err := srv.notifications.CancelNotification(ctx, event.ID); err != nil {
			srv.log(ctx).Warn("Failed to cancel notification during reset",
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.eventRepo.ClearEvents(ctx); err != nil {
		return errors.Wrap(err, "failed to clear events")
	}

	if err := srv.groupRepo.ClearGroups(ctx); err != nil {
		return errors.Wrap(err, "failed to clear groups")
	}

	if err := srv.userRepo.ClearUser(ctx); err != nil {
		return errors.Wrap(err, "failed to clear user")
	}

	srv.log(ctx).Info("Application data reset", slog.Int("events_removed", len(events)))

	return nil
}

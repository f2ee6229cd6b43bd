package store

import (
	"context"
	"log/slog"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/infra/persistence/model"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	kv     repository.KeyValueStore
	logger *slog.Logger
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(kv repository.KeyValueStore, logger *slog.Logger) repository.SettingsRepository {
	return &settingsRepository{
		kv:     kv,
		logger: logger,
	}
}

func (repo *settingsRepository) SaveSettings(ctx context.Context, settings *entity.NotificationSettings) error {
	return storeJSON(ctx, repo.kv, repository.KeySettings, model.SettingsRecord{
		VoiceEnabled:     settings.VoiceEnabled,
		SoundEnabled:     settings.SoundEnabled,
		VibrationEnabled: settings.VibrationEnabled,
		VoiceLanguage:    settings.VoiceLanguage,
	})
}

// FindSettings returns the stored settings, persisting the defaults only when
// none were ever stored. An unreadable value degrades to the defaults without
// writing, so a transient failure never replaces what the user saved.
func (repo *settingsRepository) FindSettings(ctx context.Context) (*entity.NotificationSettings, error) {
	var record model.SettingsRecord
	found, err := loadJSON(ctx, repo.kv, repository.KeySettings, &record)
	if err != nil {
		repo.logger.ErrorContext(ctx, "Failed to load settings, using defaults", slog.Any("error", err))

		return entity.DefaultNotificationSettings(), nil
	}

	if !found {
		defaults := entity.DefaultNotificationSettings()
		if err := repo.SaveSettings(ctx, defaults); err != nil {
			repo.logger.WarnContext(ctx, "Failed to persist default settings", slog.Any("error", err))
		}

		return defaults, nil
	}

	settings := &entity.NotificationSettings{
		VoiceEnabled:     record.VoiceEnabled,
		SoundEnabled:     record.SoundEnabled,
		VibrationEnabled: record.VibrationEnabled,
		VoiceLanguage:    record.VoiceLanguage,
	}
	if settings.VoiceLanguage == "" {
		settings.VoiceLanguage = entity.DefaultVoiceLanguage
	}

	return settings, nil
}

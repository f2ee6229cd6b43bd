package repository

import (
	"context"

	"agenda/internal/domain/entity"
)

// SettingsRepository persists the singleton notification settings.
type SettingsRepository interface {
	// SaveSettings overwrites the stored settings.
	SaveSettings(ctx context.Context, settings *entity.NotificationSettings) error

	// FindSettings returns the stored settings. When none exist the defaults
	// are persisted and returned; when the stored value cannot be read the
	// defaults are returned without being written.
	FindSettings(ctx context.Context) (*entity.NotificationSettings, error)
}

package usecase

import (
	"context"

	"agenda/internal/domain/entity"
)

// ProfileUsecase defines the interface for the local profile and settings
type ProfileUsecase interface {
	// Login creates or replaces the local user profile
	Login(ctx context.Context, name, email string) (*entity.User, error)

	// CurrentUser returns the stored profile
	CurrentUser(ctx context.Context) (*entity.User, error)

	GetSettings(ctx context.Context) (*entity.NotificationSettings, error)
	UpdateSettings(ctx context.Context, settings *entity.NotificationSettings) (*entity.NotificationSettings, error)

	// ResetAll removes the profile, every event and group, and their pending reminders.
	// Notification settings are kept.
	ResetAll(ctx context.Context) error
}

package repository

import (
	"context"

	"agenda/internal/domain/entity"
	"agenda/internal/errors"
)

// ErrUserNotFound is returned when no local profile is stored.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists the singleton local profile.
type UserRepository interface {
	// SaveUser overwrites the stored profile.
	SaveUser(ctx context.Context, user *entity.User) error

	// FindUser returns the stored profile or ErrUserNotFound.
	FindUser(ctx context.Context) (*entity.User, error)

	// ClearUser removes the stored profile.
	ClearUser(ctx context.Context) error
}

package store

import (
	"context"
	"log/slog"
	"slices"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	kv     repository.KeyValueStore
	logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(kv repository.KeyValueStore, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		kv:     kv,
		logger: logger,
	}
}

func (repo *userRepository) SaveUser(ctx context.Context, user *entity.User) error {
	return storeJSON(ctx, repo.kv, repository.KeyUser, model.UserRecord{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Groups: nonNilStrings(user.Groups),
	})
}

// FindUser returns ErrUserNotFound only when no profile is stored. A failed
// or undecodable read is a storage error so callers never mistake it for a logout.
func (repo *userRepository) FindUser(ctx context.Context) (*entity.User, error) {
	var record model.UserRecord
	found, err := loadJSON(ctx, repo.kv, repository.KeyUser, &record)
	if err != nil {
		repo.logger.ErrorContext(ctx, "Failed to load user", slog.Any("error", err))

		return nil, domainerrors.NewStorageReadError(err, "failed to read "+repository.KeyUser)
	}
	if !found || record.ID == "" {
		return nil, repository.ErrUserNotFound
	}

	return &entity.User{
		ID:     record.ID,
		Name:   record.Name,
		Email:  record.Email,
		Groups: nonNilStrings(record.Groups),
	}, nil
}

func (repo *userRepository) ClearUser(ctx context.Context) error {
	if err := repo.kv.Delete(ctx, repository.KeyUser); err != nil {
		return domainerrors.NewStorageError(err, "failed to remove "+repository.KeyUser)
	}

	return nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return slices.Clone(values)
}

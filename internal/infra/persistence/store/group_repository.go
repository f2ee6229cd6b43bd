package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/infra/persistence/model"
)

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	kv     repository.KeyValueStore
	logger *slog.Logger
	mu     sync.Mutex
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(kv repository.KeyValueStore, logger *slog.Logger) repository.GroupRepository {
	return &groupRepository{
		kv:     kv,
		logger: logger,
	}
}

func (repo *groupRepository) SaveGroup(ctx context.Context, group *entity.Group) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.load(ctx)
	if err != nil {
		return domainerrors.NewStorageError(err, "refusing to rewrite "+repository.KeyGroups)
	}

	next := make([]model.GroupRecord, 0, len(records)+1)
	for _, r := range records {
		if r.ID != group.ID {
			next = append(next, r)
		}
	}
	next = append(next, fromGroupDomain(group))

	return storeJSON(ctx, repo.kv, repository.KeyGroups, next)
}

func (repo *groupRepository) FindAllGroups(ctx context.Context) ([]*entity.Group, error) {
	records, err := repo.load(ctx)
	if err != nil {
		repo.logger.ErrorContext(ctx, "Failed to load groups", slog.Any("error", err))
	}

	groups := make([]*entity.Group, 0, len(records))
	for i := range records {
		groups = append(groups, toGroupDomain(&records[i]))
	}

	return groups, nil
}

func (repo *groupRepository) DeleteGroup(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.load(ctx)
	if err != nil {
		return domainerrors.NewStorageError(err, "refusing to rewrite "+repository.KeyGroups)
	}

	next := slices.DeleteFunc(slices.Clone(records), func(r model.GroupRecord) bool {
		return r.ID == id
	})

	if len(next) == len(records) {
		return nil
	}

	return storeJSON(ctx, repo.kv, repository.KeyGroups, next)
}

func (repo *groupRepository) ClearGroups(ctx context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return storeJSON(ctx, repo.kv, repository.KeyGroups, []model.GroupRecord{})
}

func (repo *groupRepository) load(ctx context.Context) ([]model.GroupRecord, error) {
	var records []model.GroupRecord
	if _, err := loadJSON(ctx, repo.kv, repository.KeyGroups, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func toGroupDomain(data *model.GroupRecord) *entity.Group {
	return &entity.Group{
		ID:        data.ID,
		Name:      data.Name,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		Members:   slices.Clone(data.Members),
	}
}

func fromGroupDomain(data *entity.Group) model.GroupRecord {
	return model.GroupRecord{
		ID:        data.ID,
		Name:      data.Name,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		Members:   slices.Clone(data.Members),
	}
}

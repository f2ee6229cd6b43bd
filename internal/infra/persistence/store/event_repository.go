package store

import (
	"context"
	"log/slog"
	"sync"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/infra/persistence/model"
)

// eventRepository implements the repository.EventRepository interface.
// mu serializes read-modify-write within this instance only; other processes
// or instances writing the same key still race with last-write-wins.
type eventRepository struct {
	kv     repository.KeyValueStore
	logger *slog.Logger
	mu     sync.Mutex
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(kv repository.KeyValueStore, logger *slog.Logger) repository.EventRepository {
	return &eventRepository{
		kv:     kv,
		logger: logger,
	}
}

// SaveEvent replaces any event with the same id, or appends it.
func (repo *eventRepository) SaveEvent(ctx context.Context, event *entity.Event) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.load(ctx)
	if err != nil {
		return domainerrors.NewStorageError(err, "refusing to rewrite "+repository.KeyEvents)
	}

	next := make([]model.EventRecord, 0, len(records)+1)
	for _, r := range records {
		if r.ID != event.ID {
			next = append(next, r)
		}
	}
	next = append(next, fromEventDomain(event))

	return storeJSON(ctx, repo.kv, repository.KeyEvents, next)
}

// FindAllEvents returns every event in stored order. An unreadable collection
// is logged and reported as empty.
func (repo *eventRepository) FindAllEvents(ctx context.Context) ([]*entity.Event, error) {
	records, err := repo.load(ctx)
	if err != nil {
		repo.logger.ErrorContext(ctx, "Failed to load events", slog.Any("error", err))
	}

	events := make([]*entity.Event, 0, len(records))
	for i := range records {
		events = append(events, toEventDomain(&records[i]))
	}

	return events, nil
}

// DeleteEvent removes the event with id. Unknown ids leave the collection untouched.
func (repo *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.load(ctx)
	if err != nil {
		return domainerrors.NewStorageError(err, "refusing to rewrite "+repository.KeyEvents)
	}

	next := make([]model.EventRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			next = append(next, r)
		}
	}

	if len(next) == len(records) {
		return nil
	}

	return storeJSON(ctx, repo.kv, repository.KeyEvents, next)
}

// ClearEvents writes an empty collection.
func (repo *eventRepository) ClearEvents(ctx context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return storeJSON(ctx, repo.kv, repository.KeyEvents, []model.EventRecord{})
}

func (repo *eventRepository) load(ctx context.Context) ([]model.EventRecord, error) {
	var records []model.EventRecord
	if _, err := loadJSON(ctx, repo.kv, repository.KeyEvents, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func toEventDomain(data *model.EventRecord) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:               data.ID,
		Title:            data.Title,
		Description:      data.Description,
		ScheduledFor:     data.ScheduledFor,
		CreatedAt:        data.CreatedAt,
		CreatedBy:        data.CreatedBy,
		GroupID:          data.GroupID,
		IsCompleted:      data.IsCompleted,
		NotificationSent: data.NotificationSent,
	}
}

func fromEventDomain(data *entity.Event) model.EventRecord {
	return model.EventRecord{
		ID:               data.ID,
		Title:            data.Title,
		Description:      data.Description,
		ScheduledFor:     data.ScheduledFor,
		CreatedAt:        data.CreatedAt,
		CreatedBy:        data.CreatedBy,
		GroupID:          data.GroupID,
		IsCompleted:      data.IsCompleted,
		NotificationSent: data.NotificationSent,
	}
}

package repository

import (
	"context"

	"agenda/internal/domain/entity"
)

// EventRepository persists the events collection as one whole value.
// Reads that fail are logged and degrade to an empty collection.
type EventRepository interface {
	// SaveEvent replaces any event with the same id, or appends it.
	SaveEvent(ctx context.Context, event *entity.Event) error

	// FindAllEvents returns every event in stored order.
	FindAllEvents(ctx context.Context) ([]*entity.Event, error)

	// DeleteEvent removes the event with id. Unknown ids are a no-op.
	DeleteEvent(ctx context.Context, id string) error

	// ClearEvents writes an empty collection.
	ClearEvents(ctx context.Context) error
}

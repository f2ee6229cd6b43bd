package usecase

import (
	"context"
	"time"

	"agenda/internal/domain/entity"
)

// CreateEventInput carries the fields a user fills in to create an event
type CreateEventInput struct {
	Title        string
	Description  string
	ScheduledFor time.Time
	// GroupID may be empty or entity.PersonalGroupID for a personal event
	GroupID string
}

// EventUsecase defines the interface for event management use cases
type EventUsecase interface {
	// CreateEvent validates and stores a new event, then schedules its reminder
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)

	// ListEvents returns events sorted by date and annotated with their status.
	// A non-nil day keeps only events scheduled on that calendar day.
	ListEvents(ctx context.Context, day *time.Time) ([]*entity.EventView, error)

	// CompleteEvent marks an event completed and cancels its reminder
	CompleteEvent(ctx context.Context, id string) (*entity.Event, error)

	// DeleteEvent removes an event and cancels its reminder
	DeleteEvent(ctx context.Context, id string) error

	// ExportCalendar renders every event as an iCalendar document
	ExportCalendar(ctx context.Context) ([]byte, error)
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// PersonalGroupID is the group id of events that belong to no shared group.
const PersonalGroupID = "personal"

// Event is a user-scheduled item with a due time.
type Event struct {
	ID               string    `json:"id"`                // Random v4 UUID assigned at creation.
	Title            string    `json:"title"`             // Trimmed, non-empty.
	Description      string    `json:"description"`       // Trimmed, non-empty.
	ScheduledFor     time.Time `json:"scheduled_for"`     // Due instant; strictly in the future at creation.
	CreatedAt        time.Time `json:"created_at"`        // Immutable creation instant.
	CreatedBy        string    `json:"created_by"`        // ID of the user who created the event.
	GroupID          string    `json:"group_id"`          // Owning group id or PersonalGroupID.
	IsCompleted      bool      `json:"is_completed"`      // Set once by the completion action.
	NotificationSent bool      `json:"notification_sent"` // Set once by the due-event notifier.
}

// IsPersonal reports whether the event belongs to no shared group.
func (e *Event) IsPersonal() bool {
	return e.GroupID == "" || e.GroupID == PersonalGroupID
}

// EventStatus is the derived temporal state of an event.
type EventStatus string

const (
	StatusCompleted EventStatus = "completed"
	StatusUpcoming  EventStatus = "upcoming"
	StatusDue       EventStatus = "due"
	StatusOverdue   EventStatus = "overdue"
)

// EventView pairs an event with its status at a given instant.
type EventView struct {
	Event
	Status EventStatus `json:"status"`
}

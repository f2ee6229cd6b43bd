// Package schedule derives an event's temporal status and orders or filters
// event lists. Every function is pure; the caller supplies the instant.
package schedule

import (
	"sort"
	"time"

	"agenda/internal/domain/entity"
)

// DueWindow is the symmetric tolerance around an event's scheduled time
// during which it counts as due.
const DueWindow = time.Minute

// WithinDueWindow reports whether |now - scheduledFor| <= DueWindow.
// The notifier uses it independently of Status, so it must stay symmetric.
func WithinDueWindow(scheduledFor, now time.Time) bool {
	diff := now.Sub(scheduledFor)
	if diff < 0 {
		diff = -diff
	}

	return diff <= DueWindow
}

// Status returns the lifecycle status of event at now.
func Status(event *entity.Event, now time.Time) entity.EventStatus {
	switch {
	case event.IsCompleted:
		return entity.StatusCompleted
	case event.ScheduledFor.After(now):
		return entity.StatusUpcoming
	case WithinDueWindow(event.ScheduledFor, now):
		return entity.StatusDue
	default:
		return entity.StatusOverdue
	}
}

// SortByDate returns a copy of events in ascending scheduled order.
// Events with equal times keep their relative order.
func SortByDate(events []*entity.Event) []*entity.Event {
	sorted := make([]*entity.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScheduledFor.Before(sorted[j].ScheduledFor)
	})

	return sorted
}

// FilterByDay keeps events scheduled within [day 00:00, next day 00:00) in day's location.
func FilterByDay(events []*entity.Event, day time.Time) []*entity.Event {
	start := StartOfDay(day)
	end := start.AddDate(0, 0, 1)

	filtered := make([]*entity.Event, 0, len(events))
	for _, e := range events {
		at := e.ScheduledFor.In(day.Location())
		if !at.Before(start) && at.Before(end) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Annotate pairs every event with its status at now, preserving order.
func Annotate(events []*entity.Event, now time.Time) []*entity.EventView {
	views := make([]*entity.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, &entity.EventView{
			Event:  *e,
			Status: Status(e, now),
		})
	}

	return views
}

// IsPendingAnnouncement reports whether the notifier should announce event at now.
func IsPendingAnnouncement(event *entity.Event, now time.Time) bool {
	return !event.NotificationSent && !event.IsCompleted && WithinDueWindow(event.ScheduledFor, now)
}

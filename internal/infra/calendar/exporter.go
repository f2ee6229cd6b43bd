// Package calendar renders events as iCalendar (RFC 5545) documents.
package calendar

import (
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/service"

	ical "github.com/arran4/golang-ical"
)

const (
	productID = "-//agenda//scheduled events//EN"
	// events are points in time; the export gives them a nominal length so
	// calendar clients render a visible block.
	eventDuration = 30 * time.Minute
	personalLabel = "Personal"

	completedProperty ical.ComponentProperty = "X-AGENDA-COMPLETED"
)

type exporter struct {
	now func() time.Time
}

// NewExporter returns a CalendarExporter stamping documents with the clock's time.
func NewExporter(clock service.Clock) service.CalendarExporter {
	return &exporter{now: clock.Now}
}

// Export writes one VEVENT per event. The group name goes into CATEGORIES.
func (e *exporter) Export(events []*entity.Event, groups []*entity.Group) ([]byte, error) {
	groupNames := make(map[string]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.Name
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	stamp := e.now().UTC()
	for _, ev := range events {
		vevent := cal.AddEvent(ev.ID)
		vevent.SetDtStampTime(stamp)
		vevent.SetCreatedTime(ev.CreatedAt)
		vevent.SetStartAt(ev.ScheduledFor)
		vevent.SetEndAt(ev.ScheduledFor.Add(eventDuration))
		vevent.SetSummary(ev.Title)
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}

		category := personalLabel
		if !ev.IsPersonal() {
			if name, ok := groupNames[ev.GroupID]; ok {
				category = name
			} else {
				category = ev.GroupID
			}
		}
		vevent.AddProperty(ical.ComponentPropertyCategories, category)

		vevent.SetStatus(ical.ObjectStatusConfirmed)
		if ev.IsCompleted {
			vevent.AddProperty(completedProperty, "TRUE")
		}
	}

	return []byte(cal.Serialize()), nil
}

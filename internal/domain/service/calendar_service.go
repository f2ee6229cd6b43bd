package service

import "agenda/internal/domain/entity"

// CalendarExporter renders events as an iCalendar document.
type CalendarExporter interface {
	Export(events []*entity.Event, groups []*entity.Group) ([]byte, error)
}

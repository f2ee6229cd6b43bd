package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"agenda/internal/domain/entity"
	mockSvc "agenda/internal/mocks/service"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_Export(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	events := []*entity.Event{
		{
			ID:           "e1",
			Title:        "Pay rent",
			Description:  "Transfer to landlord",
			ScheduledFor: now.Add(time.Hour),
			CreatedAt:    now,
			GroupID:      entity.PersonalGroupID,
		},
		{
			ID:           "e2",
			Title:        "Standup",
			Description:  "Daily sync",
			ScheduledFor: now.Add(2 * time.Hour),
			CreatedAt:    now,
			GroupID:      "g1",
			IsCompleted:  true,
		},
	}
	groups := []*entity.Group{{ID: "g1", Name: "Team"}}

	out, err := NewExporter(clock).Export(events, groups)
	require.NoError(t, err)

	cal, err := ical.ParseCalendar(bytes.NewReader(out))
	require.NoError(t, err)

	vevents := cal.Events()
	require.Len(t, vevents, 2)

	first := vevents[0]
	assert.Equal(t, "e1", first.Id())
	assert.Equal(t, "Pay rent", first.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Personal", first.GetProperty(ical.ComponentPropertyCategories).Value)
	start, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(now.Add(time.Hour)))
	assert.Nil(t, first.GetProperty(completedProperty))

	second := vevents[1]
	assert.Equal(t, "Team", second.GetProperty(ical.ComponentPropertyCategories).Value)
	assert.Equal(t, "TRUE", second.GetProperty(completedProperty).Value)

	assert.True(t, strings.HasPrefix(string(out), "BEGIN:VCALENDAR"))
}

func TestExporter_EmptyCalendar(t *testing.T) {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Now())

	out, err := NewExporter(clock).Export(nil, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "PRODID:"+productID)
	assert.NotContains(t, string(out), "BEGIN:VEVENT")
}

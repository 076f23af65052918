package schedule

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
)

func TestExportICS_TimedAndAllDay(t *testing.T) {
	focus := block("focus", at(monday, 9, 0), at(monday, 10, 30))
	desc := "quarterly planning"
	focus.Description = &desc
	offsite := block("offsite", monday.AddDate(0, 0, 2), monday.AddDate(0, 0, 2).Add(23*time.Hour))
	offsite.IsAllDay = true

	out := ExportICS([]models.TimeBlock{focus, offsite}, monday)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	byUID := make(map[string]*ical.VEvent, len(events))
	for _, e := range events {
		byUID[e.Id()] = e
	}

	timed := byUID[focus.ID.String()+"@dayplanner"]
	require.NotNil(t, timed)
	assert.Equal(t, "focus", timed.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, desc, timed.GetProperty(ical.ComponentPropertyDescription).Value)
	assert.Equal(t, "20240101T090000Z", timed.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20240101T103000Z", timed.GetProperty(ical.ComponentPropertyDtEnd).Value)

	allDay := byUID[offsite.ID.String()+"@dayplanner"]
	require.NotNil(t, allDay)
	assert.Equal(t, "20240103", allDay.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20240104", allDay.GetProperty(ical.ComponentPropertyDtEnd).Value)
}

func TestExportICS_Empty(t *testing.T) {
	out := ExportICS(nil, monday)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}

func TestAllDayRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		wantEnd    time.Time
	}{
		{"ends at next midnight", monday, monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 1)},
		{"ends same day", at(monday, 8, 0), at(monday, 17, 0), monday.AddDate(0, 0, 1)},
		{"spans into third day", monday, at(monday.AddDate(0, 0, 2), 12, 0), monday.AddDate(0, 0, 3)},
		{"end before start", monday, monday.Add(-time.Hour), monday.AddDate(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := allDayRange(tt.start, tt.end)
			assert.Equal(t, monday, first)
			assert.Equal(t, tt.wantEnd, last)
		})
	}
}

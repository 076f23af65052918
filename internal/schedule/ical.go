package schedule

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
)

const (
	productID = "-//dayplanner//time blocks//EN"
	uidSuffix = "@dayplanner"
)

// ExportICS renders blocks as an iCalendar feed with one VEVENT per block.
// All-day blocks are written as DATE values with an exclusive end date.
func ExportICS(blocks []models.TimeBlock, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, b := range blocks {
		event := cal.AddEvent(b.ID.String() + uidSuffix)
		event.SetDtStampTime(stamp.UTC())
		event.SetCreatedTime(b.CreatedAt.UTC())
		event.SetModifiedAt(b.UpdatedAt.UTC())
		event.SetSummary(b.Title)
		if b.Description != nil && *b.Description != "" {
			event.SetDescription(*b.Description)
		}

		if b.IsAllDay {
			start, end := allDayRange(b.StartTime.UTC(), b.EndTime.UTC())
			event.SetAllDayStartAt(start)
			event.SetAllDayEndAt(end)
			continue
		}
		event.SetStartAt(b.StartTime.UTC())
		event.SetEndAt(b.EndTime.UTC())
	}
	return cal.Serialize()
}

// allDayRange returns the first day and the exclusive last day covered by
// [start, end]. A block always covers at least its start day.
func allDayRange(start, end time.Time) (time.Time, time.Time) {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if end.After(last) {
		last = last.AddDate(0, 0, 1)
	}
	if !last.After(first) {
		last = first.AddDate(0, 0, 1)
	}
	return first, last
}

// Package schedule lays a set of time blocks out on a seven-day, 24-row
// calendar grid.
//
// A block is attributed to the day containing its start instant and to the
// hour row of that instant. Its vertical extent is expressed in fractions of
// an hour row: blocks longer than an hour overflow into the rows below and
// are never split. Overlapping blocks are not reflowed.
package schedule

import (
	"sort"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
)

const (
	DaysPerWeek = 7
	HoursPerDay = 24
)

// Placement is one block positioned inside its hour row.
type Placement struct {
	Block models.TimeBlock `json:"block"`
	// HourRow is the hour of day (0-23) of the block start.
	HourRow int `json:"hourRow"`
	// TopOffset is the start position within the hour row, in [0, 1).
	TopOffset float64 `json:"topOffset"`
	// HeightFraction is the duration in hours. It exceeds 1 for blocks that
	// overflow their row and is <= 0 for blocks ending before they start.
	HeightFraction float64 `json:"heightFraction"`
	// Visible is false when there is nothing to draw.
	Visible bool `json:"visible"`
}

type Day struct {
	Date       time.Time    `json:"date"`
	Weekday    time.Weekday `json:"weekday"`
	Placements []Placement  `json:"placements"`
}

type Week struct {
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	WeekStart time.Weekday     `json:"weekStart"`
	Days      [DaysPerWeek]Day `json:"days"`
}

// WeekStartFromSetting maps the stored weekStartsOn value to a weekday.
// Anything other than 0 means Monday.
func WeekStartFromSetting(v int) time.Weekday {
	if v == 0 {
		return time.Sunday
	}
	return time.Monday
}

// StartOfWeek returns midnight of the most recent weekStart day on or before
// ref, in ref's location.
func StartOfWeek(ref time.Time, weekStart time.Weekday) time.Time {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	back := (int(day.Weekday()) - int(weekStart) + DaysPerWeek) % DaysPerWeek
	return day.AddDate(0, 0, -back)
}

// Project lays out blocks for the week containing ref. Blocks whose start
// falls outside that week are dropped. It performs no I/O.
func Project(blocks []models.TimeBlock, ref time.Time, weekStart time.Weekday) Week {
	loc := ref.Location()
	start := StartOfWeek(ref, weekStart)

	week := Week{
		Start:     start,
		End:       start.AddDate(0, 0, DaysPerWeek),
		WeekStart: weekStart,
	}
	// Day boundaries come from calendar arithmetic so a DST change does not
	// shift later days.
	var bounds [DaysPerWeek + 1]time.Time
	for i := 0; i <= DaysPerWeek; i++ {
		bounds[i] = start.AddDate(0, 0, i)
	}
	for i := 0; i < DaysPerWeek; i++ {
		week.Days[i] = Day{
			Date:       bounds[i],
			Weekday:    bounds[i].Weekday(),
			Placements: []Placement{},
		}
	}

	sorted := make([]models.TimeBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	for _, b := range sorted {
		s := b.StartTime.In(loc)
		idx := dayIndex(bounds, s)
		if idx < 0 {
			continue
		}
		week.Days[idx].Placements = append(week.Days[idx].Placements, Place(b, loc))
	}
	return week
}

// Place computes the grid coordinates of a single block in loc.
func Place(b models.TimeBlock, loc *time.Location) Placement {
	s := b.StartTime.In(loc)
	minutes := float64(s.Minute()) + float64(s.Second())/60
	height := b.Minutes() / 60

	return Placement{
		Block:          b,
		HourRow:        s.Hour(),
		TopOffset:      minutes / 60,
		HeightFraction: height,
		Visible:        height > 0,
	}
}

func dayIndex(bounds [DaysPerWeek + 1]time.Time, t time.Time) int {
	if t.Before(bounds[0]) || !t.Before(bounds[DaysPerWeek]) {
		return -1
	}
	for i := 0; i < DaysPerWeek; i++ {
		if t.Before(bounds[i+1]) {
			return i
		}
	}
	return -1
}

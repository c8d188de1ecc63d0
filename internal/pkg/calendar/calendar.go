// Package calendar builds the 42-cell month grids used by date pickers.
package calendar

import (
	"errors"
	"strings"
	"time"
)

// GridSize is always 6 weeks so the layout never jumps between months.
const GridSize = 42

var ErrInvalidWeekStart = errors.New("invalid week start")

type WeekStart int

const (
	WeekStartMonday WeekStart = iota
	WeekStartSunday
)

func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monday", "mon":
		return WeekStartMonday, nil
	case "sunday", "sun":
		return WeekStartSunday, nil
	default:
		return WeekStartMonday, ErrInvalidWeekStart
	}
}

func (w WeekStart) weekday() time.Weekday {
	if w == WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}

// Month identifies a calendar month without a day component.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

// Prev and Next have no bounds: navigation may go arbitrarily far.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

type Cell struct {
	Day         int       `json:"day"`
	Date        time.Time `json:"date"`
	InMonth     bool      `json:"inMonth"`
	Past        bool      `json:"past"`
	Today       bool      `json:"today"`
	Selected    bool      `json:"selected"`
	Unavailable bool      `json:"unavailable"`
}

// Selectable reports whether tapping the cell should do anything.
func (c Cell) Selectable() bool {
	return c.InMonth && !c.Past && !c.Unavailable
}

type Options struct {
	WeekStart WeekStart
	// Today marks the today cell and is the default selectability cutoff.
	Today time.Time
	// MinDate overrides the today cutoff; check-out grids pass check-in + 1 day.
	MinDate time.Time
	// Selected marks the currently selected date, if any.
	Selected time.Time
	// Unavailable marks dates that cannot be picked (e.g. already booked).
	Unavailable func(time.Time) bool
}

// Grid renders month m as GridSize cells: the tail of the previous month,
// days 1..Days() of m, then the head of the next month.
func Grid(m Month, opts Options) []Cell {
	first := m.First()
	lead := (int(first.Weekday()) - int(opts.WeekStart.weekday()) + 7) % 7
	start := first.AddDate(0, 0, -lead)

	cutoff := truncate(opts.Today)
	if !opts.MinDate.IsZero() {
		cutoff = truncate(opts.MinDate)
	}
	today := truncate(opts.Today)
	selected := truncate(opts.Selected)

	cells := make([]Cell, GridSize)
	for i := range cells {
		date := start.AddDate(0, 0, i)
		cell := Cell{
			Day:     date.Day(),
			Date:    date,
			InMonth: m.Contains(date),
			Past:    !cutoff.IsZero() && date.Before(cutoff),
			Today:   !today.IsZero() && date.Equal(today),
		}
		if !opts.Selected.IsZero() {
			cell.Selected = date.Equal(selected)
		}
		if opts.Unavailable != nil {
			cell.Unavailable = opts.Unavailable(date)
		}
		cells[i] = cell
	}
	return cells
}

func truncate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

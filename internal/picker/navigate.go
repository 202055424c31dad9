package picker

import (
	"strconv"

	"github.com/chris-regnier/datepick/internal/calendar"
)

// Next pages forward: one month in Days, one year in Months, one decade in
// Years. The view and the selection do not change.
func (s *State) Next() {
	s.page(1)
}

// Prev pages backward by the same step as Next.
func (s *State) Prev() {
	s.page(-1)
}

func (s *State) page(dir int) {
	var next calendar.Date
	switch s.view {
	case Days:
		next = s.anchor.AddMonths(dir)
	case Months:
		next = s.anchor.AddYears(dir)
	case Years:
		next = s.anchor.AddYears(10 * dir)
	default:
		return
	}
	if next.Year < calendar.MinYear || next.Year > calendar.MaxYear {
		// Days stops at the first and last month instead of wrapping the month.
		if s.view == Days {
			return
		}
		next = calendar.Date{Year: calendar.ClampYear(next.Year), Month: next.Month, Day: 1}
	}
	s.anchor = next
}

// Header is the label above the grid: "January 2024" in Days, "2024" in
// Months and "2020-2029" in Years.
func (s *State) Header() string {
	switch s.view {
	case Months:
		return strconv.Itoa(s.anchor.Year)
	case Years:
		return calendar.DecadeLabel(s.anchor.Year)
	default:
		return s.names.MonthYear(s.anchor)
	}
}

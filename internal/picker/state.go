// Package picker holds the state of one date picker: which view is shown,
// the anchor date that selects the visible page, the committed selection and
// the text field mirroring it. State is the single source of truth; grids and
// labels are derived from it on demand.
package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
)

// View is the active calendar page.
type View int

const (
	Days View = iota
	Months
	Years
)

func (v View) String() string {
	switch v {
	case Days:
		return "days"
	case Months:
		return "months"
	case Years:
		return "years"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ParseView converts "days", "months" or "years" to a View.
func ParseView(s string) (View, error) {
	switch s {
	case "days", "":
		return Days, nil
	case "months":
		return Months, nil
	case "years":
		return Years, nil
	}
	return Days, fmt.Errorf("unknown view %q (want days, months or years)", s)
}

// YearSelect decides where picking a year lands.
type YearSelect int

const (
	// YearSelectMonths descends one level, Years to Months.
	YearSelectMonths YearSelect = iota
	// YearSelectDays jumps straight to the Days view.
	YearSelectDays
)

// ParseYearSelect converts a config value to a YearSelect.
func ParseYearSelect(s string) (YearSelect, error) {
	switch s {
	case "months", "":
		return YearSelectMonths, nil
	case "days":
		return YearSelectDays, nil
	}
	return YearSelectMonths, fmt.Errorf("unknown year_select %q (want months or days)", s)
}

// Sentinel errors for rejected transitions. State is left untouched.
var (
	ErrWrongView       = errors.New("operation not valid in the current view")
	ErrDayOutOfRange   = errors.New("day outside the anchor month")
	ErrMonthOutOfRange = errors.New("month outside January..December")
)

// Options configure a new State.
type Options struct {
	Initial    *calendar.Date   // committed date to start with; nil for no selection
	Anchor     *calendar.Date   // page to open on; defaults to Initial, then today
	YearSelect YearSelect       // landing view after picking a year
	Locale     calendar.Locale  // header labels; zero value means English
	Now        func() time.Time // clock for "today"; nil uses time.Now
}

// State is the model of a single picker instance.
type State struct {
	view       View
	anchor     calendar.Date
	selected   *calendar.Date
	open       bool
	input      string
	inputErr   error
	yearSelect YearSelect
	names      calendar.Locale
	now        func() time.Time
}

// New returns a picker on the Days view with the calendar closed.
func New(opts Options) *State {
	s := &State{
		view:       Days,
		yearSelect: opts.YearSelect,
		names:      opts.Locale,
		now:        opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.names.Months[0] == "" {
		s.names = calendar.English()
	}
	if opts.Initial != nil {
		d := *opts.Initial
		s.selected = &d
		s.input = calendar.Format(d)
	}
	switch {
	case opts.Anchor != nil:
		s.anchor = *opts.Anchor
	case s.selected != nil:
		s.anchor = *s.selected
	default:
		s.anchor = s.Today()
	}
	return s
}

// Today returns the current date from the state's clock.
func (s *State) Today() calendar.Date {
	return calendar.Today(s.now)
}

// View returns the active view.
func (s *State) View() View { return s.view }

// Anchor returns a copy of the anchor date.
func (s *State) Anchor() calendar.Date { return s.anchor }

// Selected returns a copy of the committed date and whether one exists.
func (s *State) Selected() (calendar.Date, bool) {
	if s.selected == nil {
		return calendar.Date{}, false
	}
	return *s.selected, true
}

// IsOpen reports whether the calendar is visible.
func (s *State) IsOpen() bool { return s.open }

// Locale returns the labels used by Header.
func (s *State) Locale() calendar.Locale { return s.names }

// DrillUp moves to a less specific view. It saturates at Years.
func (s *State) DrillUp() {
	switch s.view {
	case Days:
		s.view = Months
	case Months:
		s.view = Years
	}
}

// SelectMonth opens the Days view on month of the anchor year.
func (s *State) SelectMonth(month time.Month) error {
	if s.view != Months {
		return fmt.Errorf("select month in %s view: %w", s.view, ErrWrongView)
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("select month %d: %w", month, ErrMonthOutOfRange)
	}
	s.anchor = calendar.Date{Year: s.anchor.Year, Month: month, Day: 1}
	s.view = Days
	return nil
}

// SelectYear moves the anchor to year, keeping the month, and descends
// according to the configured YearSelect.
func (s *State) SelectYear(year int) error {
	if s.view != Years {
		return fmt.Errorf("select year in %s view: %w", s.view, ErrWrongView)
	}
	s.anchor = calendar.Date{Year: calendar.ClampYear(year), Month: s.anchor.Month, Day: 1}
	if s.yearSelect == YearSelectDays {
		s.view = Days
	} else {
		s.view = Months
	}
	return nil
}

// SelectDay commits day of the anchor month, closes the calendar and
// rewrites the text field.
func (s *State) SelectDay(day int) error {
	if s.view != Days {
		return fmt.Errorf("select day in %s view: %w", s.view, ErrWrongView)
	}
	if day < 1 || day > calendar.DaysInMonth(s.anchor.Year, s.anchor.Month) {
		return fmt.Errorf("select day %d of %s: %w", day, s.names.MonthYear(s.anchor), ErrDayOutOfRange)
	}
	d := calendar.Date{Year: s.anchor.Year, Month: s.anchor.Month, Day: day}
	s.commit(d)
	s.view = Days
	s.open = false
	return nil
}

func (s *State) commit(d calendar.Date) {
	s.selected = &d
	s.anchor = d
	s.input = calendar.Format(d)
	s.inputErr = nil
}

// Reset returns to the Days view on the selected date, or today when
// nothing is selected.
func (s *State) Reset() {
	s.view = Days
	if s.selected != nil {
		s.anchor = *s.selected
		return
	}
	s.anchor = s.Today()
}

// GoToToday anchors the current view on today's date.
func (s *State) GoToToday() {
	s.anchor = s.Today()
}

// DaysGrid returns the 42 cells of the anchor month.
func (s *State) DaysGrid() []calendar.DayCell {
	return calendar.BuildDays(s.anchor, s.selected, s.Today())
}

// MonthsGrid returns the twelve month cells of the anchor year.
func (s *State) MonthsGrid() []calendar.MonthCell {
	return calendar.BuildMonths(s.anchor, s.names)
}

// YearsGrid returns the decade window around the anchor year.
func (s *State) YearsGrid() []calendar.YearCell {
	return calendar.BuildYears(s.anchor)
}

// Snapshot is an immutable copy of everything the presentation layer renders.
type Snapshot struct {
	View     View
	Anchor   calendar.Date
	Selected *calendar.Date
	Open     bool
	Header   string
	Input    string
	InputErr string
	Days     []calendar.DayCell
	Months   []calendar.MonthCell
	Years    []calendar.YearCell
	Weekdays [7]string
	Today    calendar.Date
}

// Snapshot derives the render contract for the current view. Only the grid
// of the active view is filled in.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		View:     s.view,
		Anchor:   s.anchor,
		Open:     s.open,
		Header:   s.Header(),
		Input:    s.input,
		InputErr: s.InputMessage(),
		Weekdays: s.names.Weekdays,
		Today:    s.Today(),
	}
	if s.selected != nil {
		d := *s.selected
		snap.Selected = &d
	}
	switch s.view {
	case Days:
		snap.Days = s.DaysGrid()
	case Months:
		snap.Months = s.MonthsGrid()
	case Years:
		snap.Years = s.YearsGrid()
	}
	return snap
}

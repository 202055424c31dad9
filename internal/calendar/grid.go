package calendar

import (
	"strconv"
	"time"
)

// GridCells is the fixed size of a Days grid: six weeks of seven days.
const GridCells = 42

// YearCells is the size of a Years grid: a decade plus one year either side.
const YearCells = 12

// MonthOffset tells which month a day cell belongs to relative to the anchor.
type MonthOffset int

const (
	Previous MonthOffset = iota - 1
	Current
	Next
)

// Variant is the display style of a cell, resolved once by the builder.
type Variant int

const (
	Normal Variant = iota
	TodayCell
	Selected
	Inactive
)

func (v Variant) String() string {
	switch v {
	case TodayCell:
		return "today"
	case Selected:
		return "selected"
	case Inactive:
		return "inactive"
	default:
		return "normal"
	}
}

// DayCell is one entry of the Days grid.
type DayCell struct {
	Value      int
	Offset     MonthOffset
	IsToday    bool
	IsSelected bool
	Variant    Variant
}

// Selectable reports whether the cell belongs to the anchor month.
// Filler cells from adjacent months are inert.
func (c DayCell) Selectable() bool {
	return c.Offset == Current
}

// BuildDays lays out the month of anchor as 42 cells: trailing days of the
// previous month up to the first weekday, every day of the month, then
// leading days of the next month. selected may be nil.
func BuildDays(anchor Date, selected *Date, today Date) []DayCell {
	cells := make([]DayCell, 0, GridCells)

	before := int(FirstWeekday(anchor.Year, anchor.Month))
	prev := anchor.AddMonths(-1)
	prevDays := DaysInMonth(prev.Year, prev.Month)
	for i := before - 1; i >= 0; i-- {
		cells = append(cells, DayCell{Value: prevDays - i, Offset: Previous, Variant: Inactive})
	}

	days := DaysInMonth(anchor.Year, anchor.Month)
	for day := 1; day <= days; day++ {
		d := Date{Year: anchor.Year, Month: anchor.Month, Day: day}
		cell := DayCell{
			Value:      day,
			Offset:     Current,
			IsToday:    d.Equal(today),
			IsSelected: selected != nil && d.Equal(*selected),
		}
		switch {
		case cell.IsSelected:
			cell.Variant = Selected
		case cell.IsToday:
			cell.Variant = TodayCell
		default:
			cell.Variant = Normal
		}
		cells = append(cells, cell)
	}

	for day := 1; len(cells) < GridCells; day++ {
		cells = append(cells, DayCell{Value: day, Offset: Next, Variant: Inactive})
	}
	return cells
}

// MonthCell is one entry of the Months grid.
type MonthCell struct {
	Month     time.Month
	Index     int // zero based position in the grid
	Name      string
	IsCurrent bool
	Variant   Variant
}

// BuildMonths returns the twelve months of the year with the anchor month
// flagged as current.
func BuildMonths(anchor Date, names Locale) []MonthCell {
	cells := make([]MonthCell, 12)
	for i := range cells {
		m := time.Month(i + 1)
		cells[i] = MonthCell{
			Month:     m,
			Index:     i,
			Name:      names.ShortMonthName(m),
			IsCurrent: m == anchor.Month,
		}
		if cells[i].IsCurrent {
			cells[i].Variant = Selected
		}
	}
	return cells
}

// YearCell is one entry of the Years grid.
type YearCell struct {
	Year       int
	IsCurrent  bool
	IsInactive bool
	Variant    Variant
}

// DecadeStart returns the first year of the decade holding year, rounding
// toward negative infinity.
func DecadeStart(year int) int {
	q := year / 10
	if year%10 < 0 {
		q--
	}
	return q * 10
}

// BuildYears returns the decade of anchor with one year of the neighbouring
// decade on each side. The edge years are muted but remain selectable.
func BuildYears(anchor Date) []YearCell {
	start := DecadeStart(anchor.Year) - 1
	cells := make([]YearCell, YearCells)
	for i := range cells {
		year := start + i
		cell := YearCell{
			Year:       year,
			IsCurrent:  year == anchor.Year,
			IsInactive: i == 0 || i == YearCells-1,
		}
		switch {
		case cell.IsCurrent:
			cell.Variant = Selected
		case cell.IsInactive:
			cell.Variant = Inactive
		}
		cells[i] = cell
	}
	return cells
}

// DecadeLabel formats the Years view header, e.g. "2020-2029".
func DecadeLabel(year int) string {
	start := DecadeStart(year)
	return strconv.Itoa(start) + "-" + strconv.Itoa(start+9)
}

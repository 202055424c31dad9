// Package calendar provides the date arithmetic and grid builders behind the
// date picker. Dates carry no time of day and no location; they are plain
// (year, month, day) values that are copied, never shared.
package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// Layout is the canonical text form of a Date.
const Layout = "2006-01-02"

// Bounds for years that keep the canonical text at four digits.
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrInvalidDateFormat is returned (wrapped in a *ParseError) for any text
// that is not a real date written as YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("invalid date format")

var isoPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Date is a calendar date with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the normalized date for year, month and day. Out of range
// values roll over the way time.Date does: day 0 is the last day of the
// previous month and month 13 is January of the following year.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the date part of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date according to now. A nil now uses time.Now.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return FromTime(now())
}

// Time returns midnight of d in the local time zone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Equal compares year, month and day exactly.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// AddMonths returns the first day of the month n months away from d.
func (d Date) AddMonths(n int) Date {
	return New(d.Year, d.Month+time.Month(n), 1)
}

// AddYears returns the first day of d's month, n years away.
func (d Date) AddYears(n int) Date {
	return New(d.Year+n, d.Month, 1)
}

// FirstOfMonth returns day 1 of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

func (d Date) String() string {
	return Format(d)
}

// MarshalText implements encoding.TextMarshaler using the canonical layout.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(Format(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same rules as Parse.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInMonth returns the number of days in month of year using the
// Gregorian leap year rule.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		n := New(year, month, 1)
		year, month = n.Year, n.Month
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// FirstWeekday returns the weekday of the first day of month, Sunday being 0.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Format writes d as zero padded YYYY-MM-DD.
func Format(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseError describes text that Parse rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidDateFormat
}

// Parse accepts only the strict YYYY-MM-DD form. Well formed text whose
// month or day does not exist (2024-13-01, 2023-02-29) is rejected rather
// than rolled over, so Format(Parse(s)) == s for every accepted s. Year
// 0000 is rejected as well: it lies outside [MinYear, MaxYear] and the
// picker could not page away from it.
func Parse(s string) (Date, error) {
	m := isoPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &ParseError{Input: s, Reason: "expected YYYY-MM-DD"}
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if year < MinYear || year > MaxYear {
		return Date{}, &ParseError{Input: s, Reason: fmt.Sprintf("year %d out of range %d..%d", year, MinYear, MaxYear)}
	}
	if month < 1 || month > 12 {
		return Date{}, &ParseError{Input: s, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if dim := DaysInMonth(year, time.Month(month)); day < 1 || day > dim {
		return Date{}, &ParseError{Input: s, Reason: fmt.Sprintf("day %d out of range for %s %d", day, time.Month(month), year)}
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// literals known to be valid.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ClampYear limits year to [MinYear, MaxYear].
func ClampYear(year int) int {
	return min(max(year, MinYear), MaxYear)
}

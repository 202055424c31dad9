package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"leap 2024", 2024, time.February, 29},
		{"common 2023", 2023, time.February, 28},
		{"divisible by 400", 2000, time.February, 29},
		{"divisible by 100", 1900, time.February, 28},
		{"january", 2024, time.January, 31},
		{"april", 2024, time.April, 30},
		{"december", 1999, time.December, 31},
		{"month 13 rolls to january", 2024, 13, 31},
		{"month 0 rolls to december", 2024, 0, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestFirstWeekday(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  time.Weekday
	}{
		{2024, time.January, time.Monday},
		{2024, time.September, time.Sunday},
		{2023, time.July, time.Saturday},
		{2000, time.February, time.Tuesday},
	}
	for _, tt := range tests {
		if got := calendar.FirstWeekday(tt.year, tt.month); got != tt.want {
			t.Errorf("FirstWeekday(%d, %s) = %s, want %s", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestNewRollsOver(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  string
	}{
		{"day zero is end of previous month", 2024, time.March, 0, "2024-02-29"},
		{"month thirteen", 2024, 13, 1, "2025-01-01"},
		{"month zero", 2024, 0, 15, "2023-12-15"},
		{"day overflow", 2023, time.February, 30, "2023-03-02"},
		{"already valid", 2024, time.June, 15, "2024-06-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.New(tt.year, tt.month, tt.day)
			if calendar.Format(got) != tt.want {
				t.Errorf("New(%d, %d, %d) = %s, want %s", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		date calendar.Date
		want string
	}{
		{calendar.Date{Year: 2024, Month: time.January, Day: 5}, "2024-01-05"},
		{calendar.Date{Year: 999, Month: time.December, Day: 31}, "0999-12-31"},
		{calendar.Date{Year: 2024, Month: time.November, Day: 30}, "2024-11-30"},
	}
	for _, tt := range tests {
		if got := calendar.Format(tt.date); got != tt.want {
			t.Errorf("Format(%+v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	valid := []string{
		"2024-01-01",
		"2024-02-29",
		"2000-02-29",
		"1999-12-31",
		"0001-01-01",
		"9999-12-31",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			d, err := calendar.Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q): %v", s, err)
			}
			if got := calendar.Format(d); got != s {
				t.Errorf("Format(Parse(%q)) = %q", s, got)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	invalid := []string{
		"",
		"2024-1-05",
		"24-01-05",
		"2024/01/05",
		"2024-01-05 ",
		" 2024-01-05",
		"2024-01-05T00:00:00Z",
		"abcd-ef-gh",
		"2024-13-40",
		"2024-00-10",
		"2024-04-31",
		"2023-02-29",
		"2024-01-00",
		"0000-05-10",
		"0000-01-01",
	}
	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			_, err := calendar.Parse(s)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", s)
			}
			if !errors.Is(err, calendar.ErrInvalidDateFormat) {
				t.Errorf("Parse(%q) error %v does not wrap ErrInvalidDateFormat", s, err)
			}
			var pe *calendar.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error is %T, want *ParseError", s, err)
			}
			if pe.Input != s {
				t.Errorf("ParseError.Input = %q, want %q", pe.Input, s)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-12-15", 1, "2025-01-01"},
		{"2024-01-15", -1, "2023-12-01"},
		{"2024-06-01", 12, "2025-06-01"},
	}
	for _, tt := range tests {
		got := calendar.MustParse(tt.from).AddMonths(tt.n)
		if got.String() != tt.want {
			t.Errorf("%s.AddMonths(%d) = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestBefore(t *testing.T) {
	a := calendar.MustParse("2024-03-01")
	b := calendar.MustParse("2024-03-02")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before ordering wrong for %s and %s", a, b)
	}
}

func TestToday(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 2, 2, 23, 59, 0, 0, time.Local) }
	got := calendar.Today(now)
	if got.String() != "2026-02-02" {
		t.Errorf("Today() = %s, want 2026-02-02", got)
	}
}

func TestUnmarshalText(t *testing.T) {
	var d calendar.Date
	if err := d.UnmarshalText([]byte("2024-06-15")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d != (calendar.Date{Year: 2024, Month: time.June, Day: 15}) {
		t.Errorf("got %+v", d)
	}
	if err := d.UnmarshalText([]byte("June 15")); err == nil {
		t.Error("expected error for non canonical text")
	}
}

func TestClampYear(t *testing.T) {
	if got := calendar.ClampYear(-40); got != calendar.MinYear {
		t.Errorf("ClampYear(-40) = %d", got)
	}
	if got := calendar.ClampYear(12000); got != calendar.MaxYear {
		t.Errorf("ClampYear(12000) = %d", got)
	}
	if got := calendar.ClampYear(2024); got != 2024 {
		t.Errorf("ClampYear(2024) = %d", got)
	}
}

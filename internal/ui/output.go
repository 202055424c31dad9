package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/history"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatDate writes the canonical form of d on its own line.
func FormatDate(w io.Writer, d calendar.Date) {
	fmt.Fprintln(w, calendar.Format(d))
}

// RenderMonth formats the month containing anchor the way cal(1) does:
// a centered caption, weekday initials and one row per week. Days of the
// neighbouring months are left blank and the selected day is bracketed.
func RenderMonth(anchor calendar.Date, selected *calendar.Date, today calendar.Date, names calendar.Locale) string {
	var b strings.Builder

	caption := names.MonthYear(anchor)
	if pad := (gridWidth + 1 - utf8.RuneCountInString(caption)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(caption)
	b.WriteByte('\n')

	for _, wd := range names.Weekdays {
		fmt.Fprintf(&b, " %-2s", wd)
	}
	b.WriteByte('\n')

	cells := calendar.BuildDays(anchor, selected, today)
	for row := 0; row < calendar.GridCells/7; row++ {
		week := cells[row*7 : row*7+7]
		if week[0].Offset == calendar.Next {
			break
		}

		var line strings.Builder
		for i, c := range week {
			switch {
			case c.IsSelected:
				line.WriteByte('[')
			case i > 0 && week[i-1].IsSelected:
				line.WriteByte(']')
			default:
				line.WriteByte(' ')
			}
			if c.Selectable() {
				fmt.Fprintf(&line, "%2d", c.Value)
			} else {
				line.WriteString("  ")
			}
		}
		if week[6].IsSelected {
			line.WriteByte(']')
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// CellJSON is the JSON form of one day cell.
type CellJSON struct {
	Value    int    `json:"value"`
	Offset   int    `json:"offset"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
	Variant  string `json:"variant"`
}

// MonthJSON is the JSON form of a month grid.
type MonthJSON struct {
	Header   string     `json:"header"`
	Year     int        `json:"year"`
	Month    int        `json:"month"`
	Weekdays []string   `json:"weekdays"`
	Cells    []CellJSON `json:"cells"`
}

// ToMonthJSON converts the grid of anchor's month for JSON output.
func ToMonthJSON(anchor calendar.Date, selected *calendar.Date, today calendar.Date, names calendar.Locale) MonthJSON {
	cells := calendar.BuildDays(anchor, selected, today)
	out := MonthJSON{
		Header:   names.MonthYear(anchor),
		Year:     anchor.Year,
		Month:    int(anchor.Month),
		Weekdays: names.Weekdays[:],
		Cells:    make([]CellJSON, len(cells)),
	}
	for i, c := range cells {
		out.Cells[i] = CellJSON{
			Value:    c.Value,
			Offset:   int(c.Offset),
			Today:    c.IsToday,
			Selected: c.IsSelected,
			Variant:  c.Variant.String(),
		}
	}
	return out
}

// FormatHistory writes one line per pick, newest first.
func FormatHistory(w io.Writer, picks []history.Pick, names calendar.Locale) {
	if len(picks) == 0 {
		fmt.Fprintln(w, "No picks recorded.")
		return
	}
	for _, p := range picks {
		fmt.Fprintf(w, "%s  %s  %-3s  %-5s  %s\n",
			p.ID,
			calendar.Format(p.Date),
			names.Weekdays[p.Date.Time().Weekday()],
			p.Source,
			p.PickedAt.Local().Format("2006-01-02 15:04"),
		)
	}
}

// ParseResult is the JSON form of a parse attempt.
type ParseResult struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Date  string `json:"date,omitempty"`
	Error string `json:"error,omitempty"`
}

// ClearResult is the JSON form of history --clear.
type ClearResult struct {
	Removed int `json:"removed"`
}

// DateResult is the JSON form of a picked date.
type DateResult struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	ID      string `json:"id,omitempty"`
}

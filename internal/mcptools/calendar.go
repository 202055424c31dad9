package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/picker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DaysGridHandler returns the handler function for the days_grid MCP tool.
func DaysGridHandler(opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input DaysGridInput) (*mcp.CallToolResult, DaysGridOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DaysGridInput) (*mcp.CallToolResult, DaysGridOutput, error) {
		if input.Year < calendar.MinYear || input.Year > calendar.MaxYear {
			return nil, DaysGridOutput{}, fmt.Errorf("year %d out of range %d..%d", input.Year, calendar.MinYear, calendar.MaxYear)
		}
		if input.Month < 1 || input.Month > 12 {
			return nil, DaysGridOutput{}, fmt.Errorf("month %d out of range 1..12", input.Month)
		}

		var selected *calendar.Date
		if input.Selected != "" {
			d, err := calendar.Parse(input.Selected)
			if err != nil {
				return nil, DaysGridOutput{}, err
			}
			selected = &d
		}

		names := opts.names(input.Locale)
		anchor := calendar.New(input.Year, time.Month(input.Month), 1)
		cells := calendar.BuildDays(anchor, selected, calendar.Today(opts.now()))

		out := DaysGridOutput{
			Header:   names.MonthYear(anchor),
			Weekdays: names.Weekdays[:],
			Cells:    make([]CellResult, len(cells)),
		}
		for i, c := range cells {
			out.Cells[i] = CellResult{Value: c.Value, Offset: int(c.Offset), Variant: c.Variant.String()}
		}
		return nil, out, nil
	}
}

// ParseDateHandler returns the handler function for the parse_date MCP tool.
// Invalid text is reported in the output, not as a tool error.
func ParseDateHandler() func(ctx context.Context, req *mcp.CallToolRequest, input ParseDateInput) (*mcp.CallToolResult, ParseDateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ParseDateInput) (*mcp.CallToolResult, ParseDateOutput, error) {
		d, err := calendar.Parse(input.Text)
		if err != nil {
			return nil, ParseDateOutput{Error: err.Error()}, nil
		}
		return nil, ParseDateOutput{
			Valid:   true,
			Date:    calendar.Format(d),
			Weekday: d.Time().Weekday().String(),
		}, nil
	}
}

// NavigateHandler returns the handler function for the navigate MCP tool.
func NavigateHandler(opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input NavigateInput) (*mcp.CallToolResult, NavigateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input NavigateInput) (*mcp.CallToolResult, NavigateOutput, error) {
		view, err := picker.ParseView(input.View)
		if err != nil {
			return nil, NavigateOutput{}, err
		}
		anchor, err := calendar.Parse(input.Anchor)
		if err != nil {
			return nil, NavigateOutput{}, err
		}

		s := picker.New(picker.Options{
			Anchor: &anchor,
			Locale: opts.names(input.Locale),
			Now:    opts.now(),
		})
		for s.View() != view {
			s.DrillUp()
		}

		switch input.Direction {
		case "next":
			s.Next()
		case "prev":
			s.Prev()
		case "up":
			s.DrillUp()
		case "today":
			s.GoToToday()
		default:
			return nil, NavigateOutput{}, fmt.Errorf("unknown direction %q (want next, prev, up or today)", input.Direction)
		}

		return nil, NavigateOutput{
			View:   s.View().String(),
			Anchor: calendar.Format(s.Anchor()),
			Header: s.Header(),
		}, nil
	}
}

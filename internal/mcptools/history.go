package mcptools

import (
	"context"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultRecentLimit = 10

// RecentPicksHandler returns the handler function for the recent_picks MCP tool.
func RecentPicksHandler(store history.Store, opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input RecentPicksInput) (*mcp.CallToolResult, RecentPicksOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecentPicksInput) (*mcp.CallToolResult, RecentPicksOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = defaultRecentLimit
		}

		picks, err := store.Recent(limit)
		if err != nil {
			return nil, RecentPicksOutput{}, err
		}

		names := opts.names("")
		results := make([]PickResult, 0, len(picks))
		for _, p := range picks {
			results = append(results, toPickResult(p, names))
		}
		return nil, RecentPicksOutput{Picks: results}, nil
	}
}

// RecordPickHandler returns the handler function for the record_pick MCP tool.
func RecordPickHandler(store history.Store, opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input RecordPickInput) (*mcp.CallToolResult, RecordPickOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecordPickInput) (*mcp.CallToolResult, RecordPickOutput, error) {
		d, err := calendar.Parse(input.Date)
		if err != nil {
			return nil, RecordPickOutput{}, err
		}

		p, err := history.NewPick(d, history.SourceMCP, opts.now()())
		if err != nil {
			return nil, RecordPickOutput{}, err
		}
		if err := store.Record(p); err != nil {
			return nil, RecordPickOutput{}, err
		}
		ctxlog.Logger(ctx).Info("recorded pick", "id", p.ID, "date", calendar.Format(d))

		return nil, RecordPickOutput{Pick: toPickResult(p, opts.names(""))}, nil
	}
}

func toPickResult(p history.Pick, names calendar.Locale) PickResult {
	return PickResult{
		ID:       p.ID,
		Date:     calendar.Format(p.Date),
		Weekday:  names.Weekdays[p.Date.Time().Weekday()],
		PickedAt: p.PickedAt.Format(time.RFC3339),
		Source:   p.Source,
	}
}

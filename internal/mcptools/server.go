package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Options configure the registered tools.
type Options struct {
	Locale string           // default locale for labels; "" means English
	Now    func() time.Time // clock for "today"; nil uses time.Now
}

func (o Options) now() func() time.Time {
	if o.Now == nil {
		return time.Now
	}
	return o.Now
}

func (o Options) names(locale string) calendar.Locale {
	if locale == "" {
		locale = o.Locale
	}
	return calendar.Names(locale)
}

// NewDatepickMCPServer creates an in-memory MCP server exposing date picker tools.
// Returns the server and a client transport for connecting to it.
func NewDatepickMCPServer(store history.Store, opts Options) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, opts)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered date picker tools.
// store may be nil, in which case the history tools are not registered.
func CreateMCPServer(store history.Store, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "datepick",
		Version: "1.0.0",
	}, nil)

	// Calendar tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "days_grid",
		Description: "Build the 42-cell month grid for a year and month",
	}, DaysGridHandler(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_date",
		Description: "Strictly parse a YYYY-MM-DD date",
	}, ParseDateHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "navigate",
		Description: "Page or drill up a calendar view from an anchor date",
	}, NavigateHandler(opts))

	if store == nil {
		return server
	}

	// History tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_picks",
		Description: "List recently picked dates, newest first",
	}, RecentPicksHandler(store, opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_pick",
		Description: "Record a picked date in the history",
	}, RecordPickHandler(store, opts))

	return server
}

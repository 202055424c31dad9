package cmd

import (
	"log/slog"
	"os"

	"cloudeng.io/logging/ctxlog"
	"github.com/chris-regnier/datepick/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes calendar tools
over stdio transport.

Available tools:
  - days_grid: 42-cell month grid for a year and month
  - parse_date: Strict YYYY-MM-DD validation
  - navigate: Page or drill up a calendar view from an anchor date
  - recent_picks: Recently picked dates, newest first
  - record_pick: Add a date to the pick history

Example usage in an MCP client config:
  {
    "mcpServers": {
      "datepick": {
        "command": "/path/to/datepick",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store, mcptools.Options{Locale: appConfig.Locale})

	// Log to stderr (stdout is reserved for MCP protocol)
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	ctx := ctxlog.NewJSONLogger(cmd.Context(), os.Stderr, &slog.HandlerOptions{Level: level})
	logger := ctxlog.Logger(ctx)
	logger.Info("starting datepick MCP server", "transport", "stdio")
	logger.Info("storage", "backend", appConfig.Storage, "data_dir", appConfig.DataDir)

	// Blocks until the transport is closed
	return server.Run(ctx, &mcp.StdioTransport{})
}

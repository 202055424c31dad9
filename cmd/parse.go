package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/logging/ctxlog"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/history"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
)

var parseRecord bool

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Validate a date",
	Long: `Check that text is a real calendar date in strict YYYY-MM-DD form and print it.

Exits with status 1 when the text is rejected.`,
	Example: `  datepick parse 2024-02-29
  datepick parse 2023-02-29 --json
  datepick parse 2024-06-15 --record`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseRun(cmd.Context(), os.Stdout, args[0])
	},
}

func parseRun(ctx context.Context, w io.Writer, text string) error {
	d, err := calendar.Parse(text)

	if jsonOutput {
		res := ui.ParseResult{Input: text, Valid: err == nil}
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Date = calendar.Format(d)
		}
		if ferr := ui.FormatJSON(w, res); ferr != nil {
			return ferr
		}
	}
	if err != nil {
		return err
	}

	if parseRecord {
		p, err := history.NewPick(d, history.SourceParse, now())
		if err != nil {
			return fmt.Errorf("recording pick: %w", err)
		}
		if err := store.Record(p); err != nil {
			return fmt.Errorf("recording pick: %w", err)
		}
		ctxlog.Logger(ctx).Debug("recorded pick", "id", p.ID, "date", calendar.Format(d))
	}

	if !jsonOutput {
		ui.FormatDate(w, d)
	}
	return nil
}

func init() {
	parseCmd.Flags().BoolVar(&parseRecord, "record", false, "record the date in the pick history")
	rootCmd.AddCommand(parseCmd)
}

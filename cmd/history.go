package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
	forceClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or clear previously picked dates",
	Long:  "List recorded picks, newest first. With --clear, remove every recorded pick.",
	Example: `  datepick history
  datepick history --limit 5 --json
  datepick history --clear
  datepick history --clear --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyClear {
			confirm := func() (bool, error) {
				picks, err := store.Recent(0)
				if err != nil {
					return false, err
				}
				detail := fmt.Sprintf("%d picks recorded.", len(picks))
				return ui.Confirm("Clear the pick history? This cannot be undone.", detail, ui.ResolveTheme(appConfig.Theme))
			}
			if forceClear {
				confirm = nil
			}
			return historyClearRun(os.Stdout, confirm)
		}
		return historyRun(os.Stdout)
	},
}

func historyRun(w io.Writer) error {
	limit := historyLimit
	if limit == 0 {
		limit = appConfig.HistoryLimit
	}

	picks, err := store.Recent(limit)
	if err != nil {
		return fmt.Errorf("listing picks: %w", err)
	}

	if jsonOutput {
		return ui.FormatJSON(w, picks)
	}

	var buf bytes.Buffer
	ui.FormatHistory(&buf, picks, calendar.Names(appConfig.Locale))
	return ui.OutputOrPage(w, buf.String(), "Pick history", false, ui.ResolveTheme(appConfig.Theme))
}

// historyClearRun removes all picks. A nil confirm skips the prompt.
func historyClearRun(w io.Writer, confirm func() (bool, error)) error {
	if confirm != nil {
		ok, err := confirm()
		if err != nil {
			return fmt.Errorf("confirming clear: %w", err)
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	n, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clearing picks: %w", err)
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ClearResult{Removed: n})
	}
	fmt.Fprintf(w, "Removed %d picks.\n", n)
	return nil
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of picks to list (0 uses history_limit)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "remove all recorded picks")
	historyCmd.Flags().BoolVar(&forceClear, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(historyCmd)
}

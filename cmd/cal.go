package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
)

var calCmd = &cobra.Command{
	Use:   "cal [YYYY-MM]",
	Short: "Print a month calendar",
	Long: `Print the month grid without starting the interactive picker.

The month defaults to the one containing --date, or the current month.
The --date day is shown in brackets.`,
	Example: `  datepick cal
  datepick cal 2024-02
  datepick cal --date 2024-06-15
  datepick cal 2024-06 --locale de --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		return calRun(os.Stdout, month)
	},
}

func calRun(w io.Writer, month string) error {
	today := calendar.Today(now)
	anchor := today

	var selected *calendar.Date
	if initialDate != "" {
		d, err := calendar.Parse(initialDate)
		if err != nil {
			return err
		}
		selected = &d
		anchor = d
	}

	if month != "" {
		d, err := calendar.Parse(month + "-01")
		if err != nil {
			return fmt.Errorf("invalid month %q: expected YYYY-MM", month)
		}
		anchor = d
	}
	anchor = anchor.FirstOfMonth()

	names := calendar.Names(appConfig.Locale)
	if jsonOutput {
		return ui.FormatJSON(w, ui.ToMonthJSON(anchor, selected, today, names))
	}
	_, err := io.WriteString(w, ui.RenderMonth(anchor, selected, today, names))
	return err
}

func init() {
	rootCmd.AddCommand(calCmd)
}

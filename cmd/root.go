package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/config"
	"github.com/chris-regnier/datepick/internal/history"
	"github.com/chris-regnier/datepick/internal/history/markdown"
	"github.com/chris-regnier/datepick/internal/history/sqlite"
	"github.com/chris-regnier/datepick/internal/picker"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	initialDate    string
	resumeLast     bool
	localeFlag     string
	verbose        bool
	appConfig      *config.Config
	store          history.Store

	now        = time.Now
	isTerminal = term.IsTerminal
)

// errCancelled is returned when the interactive session ends without a date.
var errCancelled = errors.New("cancelled")

var rootCmd = &cobra.Command{
	Use:   "datepick",
	Short: "Pick a date in the terminal",
	Long: `datepick opens a calendar date picker and prints the chosen date as YYYY-MM-DD.

The UI is drawn on stderr so the result can be captured from stdout:

  due=$(datepick --date 2024-06-15)`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}
		if localeFlag != "" {
			appConfig.Locale = localeFlag
		}

		ctx := cmd.Context()
		if verbose {
			ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
			cmd.SetContext(ctx)
		}

		store, err = openStore(appConfig)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("config loaded",
			"storage", appConfig.Storage,
			"data_dir", appConfig.DataDir,
			"locale", appConfig.Locale)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootRun(cmd.Context(), os.Stdout, interactive())
	},
}

// interactive reports whether someone can drive the picker. Keys arrive on
// stdin and the UI is drawn on stderr; stdout only carries the result and
// is usually captured.
func interactive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stderr.Fd()))
}

// closeStore closes the history store opened for this run, if any.
func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

func openStore(cfg *config.Config) (history.Store, error) {
	switch cfg.Storage {
	case "markdown":
		s, err := markdown.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// pickerOptions builds the initial picker state from flags and config.
// --date wins over --resume; without either the picker starts on today
// unless start_empty is set.
func pickerOptions(ctx context.Context) (picker.Options, error) {
	ys, err := picker.ParseYearSelect(appConfig.YearSelect)
	if err != nil {
		return picker.Options{}, err
	}
	opts := picker.Options{
		YearSelect: ys,
		Locale:     calendar.Names(appConfig.Locale),
		Now:        now,
	}

	switch {
	case initialDate != "":
		d, err := calendar.Parse(initialDate)
		if err != nil {
			return picker.Options{}, err
		}
		opts.Initial = &d
	case resumeLast:
		last, err := store.Last()
		switch {
		case err == nil:
			opts.Initial = &last.Date
		case errors.Is(err, history.ErrNotFound):
			ctxlog.Logger(ctx).Debug("no previous pick to resume")
		default:
			return picker.Options{}, fmt.Errorf("resuming last pick: %w", err)
		}
	}

	if opts.Initial == nil && !appConfig.StartEmpty {
		today := calendar.Today(now)
		opts.Initial = &today
	}
	return opts, nil
}

func rootRun(ctx context.Context, w io.Writer, interactive bool) error {
	opts, err := pickerOptions(ctx)
	if err != nil {
		return err
	}

	if !interactive {
		// Nothing to interact with: print the date the picker would open on.
		d := calendar.Today(now)
		if opts.Initial != nil {
			d = *opts.Initial
		}
		source := history.SourcePipe
		if initialDate != "" {
			source = history.SourceFlag
		}
		return emitPick(ctx, w, d, source)
	}

	res, err := ui.Run(ctx, ui.RunOptions{
		Picker:       opts,
		Theme:        ui.ResolveTheme(appConfig.Theme),
		QuitOnSelect: true,
	})
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}
	if !res.Committed {
		return errCancelled
	}
	return emitPick(ctx, w, res.Date, history.SourceTUI)
}

// emitPick records d in the history when enabled and prints it.
func emitPick(ctx context.Context, w io.Writer, d calendar.Date, source string) error {
	out := ui.DateResult{
		Date:    calendar.Format(d),
		Weekday: d.Time().Weekday().String(),
	}

	if appConfig.RecordHistory {
		p, err := history.NewPick(d, source, now())
		if err != nil {
			return fmt.Errorf("recording pick: %w", err)
		}
		if err := store.Record(p); err != nil {
			return fmt.Errorf("recording pick: %w", err)
		}
		out.ID = p.ID
		ctxlog.Logger(ctx).Debug("recorded pick", "id", p.ID, "date", out.Date, "source", source)
	}

	if jsonOutput {
		return ui.FormatJSON(w, out)
	}
	ui.FormatDate(w, d)
	return nil
}

// Execute runs the root command. The history store is closed whether or
// not the command succeeded.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if cerr := closeStore(); cerr != nil && err == nil {
		err = fmt.Errorf("closing storage: %w", cerr)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (markdown|sqlite)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "language for month and weekday names (e.g. en, de)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&initialDate, "date", "", "initial or selected date (YYYY-MM-DD)")
	rootCmd.Flags().BoolVar(&resumeLast, "resume", false, "start on the most recently picked date")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

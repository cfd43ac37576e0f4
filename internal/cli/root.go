package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"moneytracker/internal/config"
	"moneytracker/internal/earnings"
	"moneytracker/internal/text"
)

const appVersion = "0.3.0"

// App carries the resolved configuration and process collaborators into commands.
type App struct {
	Config  config.Config
	Verbose bool
	Clock   earnings.Clock

	// IsInteractive reports whether stdin is a terminal; the root command
	// falls back to a one-shot status printout when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "moneytracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		salary  float64
		periods string
		presetN string
		tz      string
		lang    string
		refresh time.Duration
		logFile string
	)

	root := &cobra.Command{
		Use:           "moneytracker",
		Short:         "Watch your daily salary accrue in real time",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("salary") {
				cfg.DailySalary = salary
			}
			if flags.Changed("periods") {
				cfg.Periods = periods
			}
			if flags.Changed("preset") {
				cfg.Preset = presetN
				if !flags.Changed("periods") {
					cfg.Periods = ""
				}
			}
			if flags.Changed("tz") {
				cfg.Timezone = tz
			}
			if flags.Changed("lang") {
				cfg.Lang = text.ParseLang(lang)
			}
			if flags.Changed("refresh") {
				if refresh <= 0 {
					return fmt.Errorf("--refresh must be > 0")
				}
				cfg.Refresh = refresh
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			app.Config = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return runStatus(cmd, app, "")
			}
			return runDashboard(app)
		},
	}
	root.SetVersionTemplate("moneytracker v{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.Float64Var(&salary, "salary", 250, "Daily salary")
	pf.StringVar(&periods, "periods", "", "Work periods, e.g. 09:00-12:00,14:00-18:00 (overrides --preset)")
	pf.StringVar(&presetN, "preset", "standard", "Preset work schedule (see 'moneytracker presets')")
	pf.StringVar(&tz, "tz", "", "IANA timezone, e.g. Asia/Shanghai (default: local)")
	pf.StringVar(&lang, "lang", "en", "Dashboard language: en or zh")
	pf.BoolVarP(&app.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "Write dashboard logs to this file")
	pf.DurationVar(&refresh, "refresh", time.Second, "Dashboard refresh interval")

	root.AddCommand(
		newStatusCmd(app),
		newPresetsCmd(),
		newServeCmd(app),
		newSetupCmd(app),
	)

	return root
}

func (a *App) clock() earnings.Clock {
	if a.Clock == nil {
		return earnings.RealClock{}
	}
	return a.Clock
}

// newLogger builds the text logger; verbose always lowers the level to debug.
func (a *App) newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if a.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// dashboardLogger keeps log output off the alternate screen.
func (a *App) dashboardLogger() (*slog.Logger, func() error, error) {
	if a.Config.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return a.newLogger(f, slog.LevelInfo), f.Close, nil
}

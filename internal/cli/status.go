package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"moneytracker/internal/earnings"
	"moneytracker/internal/schedule"
	"moneytracker/internal/text"
)

func newStatusCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print what has been earned so far today and exit",
		Example: `  moneytracker status
  moneytracker status --periods 08:00-12:00 --salary 400 --at 10:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app, at)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Measure at this time of day (HH:MM) instead of now")
	return cmd
}

func runStatus(cmd *cobra.Command, app *App, at string) error {
	cfg := app.Config
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	sched, err := cfg.Schedule()
	if err != nil {
		return err
	}

	now := app.clock().Now().In(loc)
	if at != "" {
		tod, err := schedule.ParseTimeOfDay(at)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		if tod.Hour == 24 {
			return fmt.Errorf("--at: %w: 24:00 only ends a period", schedule.ErrInvalidTimeOfDay)
		}
		now = tod.On(now)
	}

	session := earnings.NewSession(app.newLogger(os.Stderr, slog.LevelWarn), loc)
	if err := session.Start(sched, cfg.DailySalary, now); err != nil {
		return err
	}
	defer session.Reset()

	printStatus(cmd.OutOrStdout(), cfg.Lang, session, session.Snapshot(now))
	return nil
}

func printStatus(w io.Writer, lang text.Lang, s *earnings.Session, snap earnings.Snapshot) {
	t := func(key string) string { return text.Get(lang, key) }
	rates := s.Rates

	fmt.Fprintf(w, "%s: %s\n", t("current_time"), snap.At.Format(time.DateTime+" MST"))
	fmt.Fprintf(w, "%s: %s (%.2f %s)\n", t("periods"), s.Schedule, s.Schedule.Hours(), t("hours"))
	fmt.Fprintf(w, "%s: %s\n", t("daily_salary"), earnings.FormatMoney(rates.DailySalary))
	fmt.Fprintf(w, "%s: %s/%s  %s: %s\n",
		t("hourly_salary"), earnings.FormatMoney(rates.Hourly()), t("hours"),
		t("minute_salary"), earnings.FormatRate(rates.PerMinute()),
	)
	fmt.Fprintf(w, "%s: %s\n", t("time_per_dollar"), earnings.FormatTimePerDollar(rates.TimePerDollar()))
	fmt.Fprintf(w, "%s: %s\n", t("earned_amount"), earnings.FormatMoney(snap.Earned))
	fmt.Fprintf(w, "%s: %.2f%%\n", t("progress_today"), snap.Progress)
	if snap.Working {
		fmt.Fprintf(w, "%s (%s)\n", t("is_work_time"), snap.Current)
	} else {
		fmt.Fprintln(w, t("not_work_time"))
	}
}

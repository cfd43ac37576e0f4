package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moneytracker/internal"
	"moneytracker/internal/refresh"
)

func runDashboard(app *App) error {
	logger, closeLog, err := app.dashboardLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	loc, err := app.Config.Location()
	if err != nil {
		return err
	}
	sched, err := app.Config.Schedule()
	if err != nil {
		return err
	}
	presetName := app.Config.Preset
	if app.Config.Periods != "" {
		presetName = ""
	}

	m, err := internal.NewModel(internal.Options{
		Schedule:    sched,
		DailySalary: app.Config.DailySalary,
		Preset:      presetName,
		Lang:        app.Config.Lang,
		Location:    loc,
		Clock:       app.clock(),
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())

	ticker := refresh.New(app.Config.Refresh)
	ticker.Start(func(now time.Time) {
		p.Send(internal.MsgTick{Now: now})
	})
	defer ticker.Stop()

	logger.Info("dashboard started",
		"refresh", app.Config.Refresh,
		"timezone", loc.String(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

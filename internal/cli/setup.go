package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"moneytracker/internal/preset"
	"moneytracker/internal/text"
)

func newSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Pick salary, schedule and timezone interactively, then start the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("setup needs an interactive terminal")
			}
			if err := runSetupForm(app); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
			return runDashboard(app)
		},
	}
}

func runSetupForm(app *App) error {
	cfg := &app.Config
	salary := strconv.FormatFloat(cfg.DailySalary, 'f', -1, 64)
	presetName := cfg.Preset
	tz := cfg.Timezone
	lang := string(cfg.Lang)

	options := make([]huh.Option[string], 0, len(preset.All()))
	for _, p := range preset.All() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.Schedule), p.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily salary").
				Value(&salary).
				Validate(validateSalary),
			huh.NewSelect[string]().
				Title("Work schedule").
				Options(options...).
				Value(&presetName),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name such as Europe/Berlin; leave empty for local time").
				Value(&tz).
				Validate(validateTimezone),
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", string(text.English)),
					huh.NewOption("中文", string(text.Chinese)),
				).
				Value(&lang),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	v, err := parseSalary(salary)
	if err != nil {
		return err
	}
	cfg.DailySalary = v
	cfg.Preset = presetName
	cfg.Periods = ""
	cfg.Timezone = strings.TrimSpace(tz)
	cfg.Lang = text.ParseLang(lang)
	return nil
}

func parseSalary(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func validateSalary(s string) error {
	v, err := parseSalary(s)
	if err != nil {
		return err
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("salary must be greater than zero")
	}
	return nil
}

func validateTimezone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown timezone %q", s)
	}
	return nil
}

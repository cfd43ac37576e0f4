package internal

import (
	"fmt"
	"strings"

	"moneytracker/internal/earnings"
	"moneytracker/internal/text"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	periodItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	periodItemSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	moneyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	rateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	inputInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	workHourStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	nowHourStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func (m *Model) t(key string) string {
	return text.Get(m.Lang, key)
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(96).Render(m.t("title")))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Width(96).Align(lipgloss.Center).Render(m.t("subtitle")))
	sb.WriteString("\n\n")

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.settingsView(),
		"  ",
		m.trackingView(),
	)
	sb.WriteString(boxes)
	sb.WriteString("\n\n")

	if m.Err != nil {
		sb.WriteString(errorStyle.Render("Error: " + m.Err.Error()))
		sb.WriteString("\n")
	}

	if m.Session.Running() {
		sb.WriteString(helpStyle.Render(m.t("help_running")))
	} else {
		sb.WriteString(helpStyle.Render(m.t("help_stopped")))
	}
	return sb.String()
}

func (m *Model) settingsView() string {
	var sb strings.Builder

	sb.WriteString(m.t("settings"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s: %s\n", m.t("daily_salary"), moneyStyle.Render(earnings.FormatMoney(m.DailySalary))))

	presetName := m.PresetName
	if presetName == "" {
		presetName = "custom"
	}
	sb.WriteString(fmt.Sprintf("%s: %s\n\n", m.t("preset"), presetName))
	sb.WriteString(m.t("periods"))
	sb.WriteString("\n")

	periods := m.Periods
	if m.Session.Running() {
		periods = m.Session.Schedule
	}
	for i, p := range periods {
		line := fmt.Sprintf("%s %d  %s (%s)", m.t("period"), i+1, p, formatHours(p.Duration().Hours(), m.t("hours")))
		switch {
		case m.Session.Running():
			sb.WriteString(periodItemStyle.Render(line))
		case i == m.SelectedIndex:
			sb.WriteString(periodItemSelectedStyle.Render(line))
		default:
			sb.WriteString(periodItemStyle.Render(inactiveStyle.Render(line)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n%s: %s\n", m.t("total_work_time"), formatHours(periods.Hours(), m.t("hours"))))

	return boxStyle.Width(40).Height(17).Render(sb.String())
}

func (m *Model) trackingView() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", m.t("current_time"), m.Now.Format("15:04:05 MST")))

	if !m.Session.Running() {
		sb.WriteString("\n")
		sb.WriteString(inactiveStyle.Render(m.t("status_stopped")))
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().Width(48).Render(m.t("setup_prompt")))
		return boxStyle.Width(54).Height(17).Render(sb.String())
	}

	snap := m.Snapshot()
	rates := m.Session.Rates

	sb.WriteString(runningStyle.Render(m.t("status_running")))
	sb.WriteString("\n\n")
	sb.WriteString(m.hourStrip())
	sb.WriteString("\n\n")

	sb.WriteString(m.t("progress"))
	sb.WriteString("\n")
	sb.WriteString(m.bar.ViewAs(min(snap.Progress/100, 1)))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%s: %s\n", m.t("earned_amount"), moneyStyle.Render(earnings.FormatMoney(snap.Earned))))
	sb.WriteString(fmt.Sprintf("%s: %s\n", m.t("time_per_dollar"), rateStyle.Render(earnings.FormatTimePerDollar(rates.TimePerDollar()))))
	sb.WriteString(fmt.Sprintf("%s: %s\n", m.t("progress_today"), rateStyle.Render(fmt.Sprintf("%.2f%%", snap.Progress))))
	sb.WriteString(fmt.Sprintf("%s: %s/%s  %s: %s\n",
		m.t("hourly_salary"), earnings.FormatMoney(rates.Hourly()), m.t("hours"),
		m.t("minute_salary"), earnings.FormatRate(rates.PerMinute()),
	))
	sb.WriteString("\n")

	if snap.Working {
		sb.WriteString(runningStyle.Render(m.t("is_work_time") + " (" + snap.Current.String() + ")"))
	} else {
		sb.WriteString(inactiveStyle.Render(m.t("not_work_time")))
	}

	return boxStyle.Width(54).Height(17).Render(sb.String())
}

// hourStrip draws one cell per hour of the day, marking work hours and the current hour.
func (m *Model) hourStrip() string {
	hours := m.Session.Schedule.WorkHours()
	current := m.Now.Hour()

	var cells strings.Builder
	for h, work := range hours {
		cell := "░"
		if work {
			cell = "█"
		}
		switch {
		case h == current:
			cells.WriteString(nowHourStyle.Render(cell))
		case work:
			cells.WriteString(workHourStyle.Render(cell))
		default:
			cells.WriteString(inactiveStyle.Render(cell))
		}
	}
	legend := fmt.Sprintf("%s █  %s ░", m.t("work_time"), m.t("non_work_time"))
	return cells.String() + "\n" + helpStyle.Render("0     6     12    18   24  "+legend)
}

func (m *Model) editFormView() string {
	startMarker, endMarker := "  ", "  "
	startLabel := fmt.Sprintf("%s: ", m.t("start_time"))
	endLabel := fmt.Sprintf("%s: ", m.t("end_time"))
	startValue, endValue := m.StartInput, m.EndInput

	if m.InputFocus == 0 {
		startMarker = "→ "
		startLabel = inputStyle.Render(startMarker + startLabel)
		endLabel = inputInactiveStyle.Render(endMarker + endLabel)
		startValue = inputStyle.Render(startValue + "█")
	} else {
		endMarker = "→ "
		startLabel = inputInactiveStyle.Render(startMarker + startLabel)
		endLabel = inputStyle.Render(endMarker + endLabel)
		endValue = inputStyle.Render(endValue + "█")
	}

	form := fmt.Sprintf("%s\n\n%s%s\n\n%s%s\n\n%s%s",
		titleStyle.Render(fmt.Sprintf("%s %d", m.t("edit_period"), m.SelectedIndex+1)),
		startLabel, startValue,
		endLabel, endValue,
		m.formError(),
		helpStyle.Render(m.t("help_form")),
	)

	return lipgloss.Place(
		96, 24,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Width(50).Render(form),
	)
}

func (m *Model) salaryFormView() string {
	label := inputStyle.Render(fmt.Sprintf("→ %s: ", m.t("daily_salary")))
	value := inputStyle.Render("$" + m.SalaryInput + "█")

	form := fmt.Sprintf("%s\n\n%s%s\n\n%s%s",
		titleStyle.Render(m.t("edit_salary")),
		label, value,
		m.formError(),
		helpStyle.Render(m.t("help_form")),
	)

	return lipgloss.Place(
		96, 24,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Width(50).Render(form),
	)
}

func (m *Model) formError() string {
	if m.Err == nil {
		return ""
	}
	return errorStyle.Render(m.Err.Error()) + "\n\n"
}

func formatHours(h float64, unit string) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d %s", int(h), unit)
	}
	return fmt.Sprintf("%.2f %s", h, unit)
}

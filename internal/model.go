package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"moneytracker/internal/earnings"
	"moneytracker/internal/preset"
	"moneytracker/internal/schedule"
	"moneytracker/internal/text"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgTick asks the model to re-measure. A zero Now reads the model's clock.
type MsgTick struct {
	Now time.Time
}

var (
	errLastPeriod    = errors.New("at least one work period is required")
	errNoSelection   = errors.New("no period selected")
	errInvalidSalary = errors.New("daily salary must be a positive number")
)

// defaultNewPeriod is what "n" appends: a plain nine to six day.
var defaultNewPeriod = schedule.NewPeriod(schedule.At(9, 0), schedule.At(18, 0))

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Start  key.Binding
	Reset  key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Preset key.Binding
	Salary key.Binding
	Lang   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Start:  key.NewBinding(key.WithKeys("enter")),
		Reset:  key.NewBinding(key.WithKeys("r")),
		New:    key.NewBinding(key.WithKeys("n")),
		Edit:   key.NewBinding(key.WithKeys("e")),
		Delete: key.NewBinding(key.WithKeys("d")),
		Preset: key.NewBinding(key.WithKeys("p")),
		Salary: key.NewBinding(key.WithKeys("s")),
		Lang:   key.NewBinding(key.WithKeys("l")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// Options seeds a Model. An empty schedule falls back to a preset; the salary is used as given.
type Options struct {
	Schedule    schedule.Schedule
	DailySalary float64
	Preset      string
	Lang        text.Lang
	Location    *time.Location
	Clock       earnings.Clock
	Logger      *slog.Logger
}

type Model struct {
	Periods       schedule.Schedule
	DailySalary   float64
	PresetName    string // empty once the periods are edited by hand
	SelectedIndex int
	Lang          text.Lang
	Session       *earnings.Session
	Now           time.Time
	Err           error

	// Period / salary form state
	ShowEditForm   bool
	ShowSalaryForm bool
	StartInput     string
	EndInput       string
	SalaryInput    string
	InputFocus     int

	clock earnings.Clock
	keys  keyMap
	bar   progress.Model
	log   *slog.Logger
}

func NewModel(opts Options) (*Model, error) {
	if opts.Clock == nil {
		opts.Clock = earnings.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Lang == "" {
		opts.Lang = text.English
	}
	if len(opts.Schedule) == 0 {
		name := opts.Preset
		if name == "" {
			name = preset.Default
		}
		p, err := preset.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load preset: %w", err)
		}
		opts.Schedule = p.Schedule
		opts.Preset = p.Name
	}

	session := earnings.NewSession(opts.Logger, opts.Location)
	m := &Model{
		Periods:     opts.Schedule.Clone(),
		DailySalary: opts.DailySalary,
		PresetName:  opts.Preset,
		Lang:        opts.Lang,
		Session:     session,
		clock:       opts.Clock,
		keys:        defaultKeyMap(),
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		log:         opts.Logger,
	}
	m.Now = m.clock.Now().In(session.Location())
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		now := msg.Now
		if now.IsZero() {
			now = m.clock.Now()
		}
		m.Now = now.In(m.Session.Location())
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width/2-10, 10), 60)
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.ShowEditForm {
		return m.editFormView()
	}
	if m.ShowSalaryForm {
		return m.salaryFormView()
	}
	return m.mainView()
}

func (m *Model) SelectedPeriod() (schedule.Period, bool) {
	if m.SelectedIndex >= 0 && m.SelectedIndex < len(m.Periods) {
		return m.Periods[m.SelectedIndex], true
	}
	return schedule.Period{}, false
}

// Snapshot measures the session at the model's current time.
func (m *Model) Snapshot() earnings.Snapshot {
	return m.Session.Snapshot(m.Now)
}

func (m *Model) AddPeriod(p schedule.Period) {
	m.Periods = append(m.Periods, p)
	m.SelectedIndex = len(m.Periods) - 1
	m.PresetName = ""
}

func (m *Model) UpdatePeriod(i int, p schedule.Period) error {
	if i < 0 || i >= len(m.Periods) {
		return errNoSelection
	}
	if err := p.Validate(); err != nil {
		return err
	}
	m.Periods[i] = p
	m.PresetName = ""
	return nil
}

// DeletePeriod refuses to remove the last remaining period.
func (m *Model) DeletePeriod(i int) error {
	if i < 0 || i >= len(m.Periods) {
		return errNoSelection
	}
	if len(m.Periods) <= 1 {
		return errLastPeriod
	}
	m.Periods = append(m.Periods[:i], m.Periods[i+1:]...)
	if m.SelectedIndex >= len(m.Periods) {
		m.SelectedIndex = len(m.Periods) - 1
	}
	m.PresetName = ""
	return nil
}

func (m *Model) ApplyPreset(p preset.Preset) {
	m.Periods = p.Schedule.Clone()
	m.PresetName = p.Name
	m.SelectedIndex = 0
}

func (m *Model) SetSalary(v float64) error {
	if v <= 0 {
		return errInvalidSalary
	}
	m.DailySalary = v
	return nil
}

// StartTracking freezes the current periods and salary into a running session.
func (m *Model) StartTracking() error {
	now := m.clock.Now()
	if err := m.Session.Start(m.Periods, m.DailySalary, now); err != nil {
		return err
	}
	m.Now = now.In(m.Session.Location())
	return nil
}

func (m *Model) ResetTracking() {
	m.Session.Reset()
}

// Close ends a running session so its end is logged.
func (m *Model) Close() error {
	m.Session.Reset()
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowEditForm {
		return m.handleFormInput(msg)
	}
	if m.ShowSalaryForm {
		return m.handleSalaryInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Lang):
		m.Lang = text.Toggle(m.Lang)
		return m, nil
	}

	// Configuration is frozen while tracking; only reset is accepted.
	if m.Session.Running() {
		if key.Matches(msg, m.keys.Reset) {
			m.ResetTracking()
			m.Err = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.SelectedIndex > 0 {
			m.SelectedIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.SelectedIndex < len(m.Periods)-1 {
			m.SelectedIndex++
		}
	case key.Matches(msg, m.keys.Start):
		m.Err = m.StartTracking()
	case key.Matches(msg, m.keys.New):
		m.AddPeriod(defaultNewPeriod)
		m.Err = nil
	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.SelectedPeriod(); ok {
			m.ShowEditForm = true
			m.StartInput = p.Start.String()
			m.EndInput = p.End.String()
			m.InputFocus = 0
			m.Err = nil
		}
	case key.Matches(msg, m.keys.Delete):
		m.Err = m.DeletePeriod(m.SelectedIndex)
	case key.Matches(msg, m.keys.Preset):
		m.ApplyPreset(preset.Next(m.PresetName))
		m.Err = nil
	case key.Matches(msg, m.keys.Salary):
		m.ShowSalaryForm = true
		m.SalaryInput = strconv.FormatFloat(m.DailySalary, 'f', -1, 64)
		m.Err = nil
	}
	return m, nil
}

func (m *Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.ShowEditForm = false
		m.Err = nil
	case "enter":
		if m.InputFocus == 0 {
			m.InputFocus = 1
			return m, nil
		}
		p, err := schedule.ParsePeriod(m.StartInput + "-" + m.EndInput)
		if err == nil {
			err = m.UpdatePeriod(m.SelectedIndex, p)
		}
		if err != nil {
			m.Err = err
			return m, nil
		}
		m.ShowEditForm = false
		m.Err = nil
	case "backspace":
		if m.InputFocus == 0 {
			m.StartInput = dropLast(m.StartInput)
		} else {
			m.EndInput = dropLast(m.EndInput)
		}
	case "tab", "shift+tab":
		m.InputFocus = 1 - m.InputFocus
	default:
		r, ok := singleRune(msg)
		if !ok || !(r == ':' || (r >= '0' && r <= '9')) {
			break
		}
		if m.InputFocus == 0 {
			m.StartInput += string(r)
		} else {
			m.EndInput += string(r)
		}
	}
	return m, nil
}

func (m *Model) handleSalaryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.ShowSalaryForm = false
		m.Err = nil
	case "enter":
		v, err := strconv.ParseFloat(strings.TrimSpace(m.SalaryInput), 64)
		if err != nil {
			m.Err = errInvalidSalary
			return m, nil
		}
		if err := m.SetSalary(v); err != nil {
			m.Err = err
			return m, nil
		}
		m.ShowSalaryForm = false
		m.Err = nil
	case "backspace":
		m.SalaryInput = dropLast(m.SalaryInput)
	default:
		if r, ok := singleRune(msg); ok && (r == '.' || (r >= '0' && r <= '9')) {
			m.SalaryInput += string(r)
		}
	}
	return m, nil
}

func singleRune(msg tea.KeyMsg) (rune, bool) {
	runes := []rune(msg.String())
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

func dropLast(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}

package internal

import (
	"testing"
	"time"

	"moneytracker/internal/earnings"
	"moneytracker/internal/schedule"
	"moneytracker/internal/text"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(Options{
		DailySalary: 250,
		Location:    time.UTC,
		Clock:       earnings.FixedClock(testNow),
	})
	require.NoError(t, err)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) *Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(*Model)
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "09:00-12:00,14:00-18:00", m.Periods.String())
	assert.Equal(t, 250.0, m.DailySalary)
	assert.Equal(t, "standard", m.PresetName)
	assert.Equal(t, text.English, m.Lang)
	assert.False(t, m.Session.Running())
	assert.Equal(t, testNow, m.Now)
}

func TestNewModelUnknownPreset(t *testing.T) {
	_, err := NewModel(Options{Preset: "nope"})
	assert.Error(t, err)
}

func TestStartAndTick(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, m.Err)
	require.True(t, m.Session.Running())

	snap := m.Snapshot()
	assert.Equal(t, "$35.71", earnings.FormatMoney(snap.Earned))

	m = press(m, MsgTick{Now: time.Date(2025, 6, 16, 13, 0, 0, 0, time.UTC)})
	assert.Equal(t, "$107.14", earnings.FormatMoney(m.Snapshot().Earned))

	view := m.View()
	assert.Contains(t, view, "$107.14")
	assert.Contains(t, view, "Currently not in work time")
}

func TestZeroTickReadsClock(t *testing.T) {
	m := newTestModel(t)
	m.Now = time.Time{}
	m = press(m, MsgTick{})
	assert.Equal(t, testNow, m.Now)
}

func TestEditingIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Session.Running())

	m = press(m, runes("n"), runes("d"), runes("p"), runes("e"), runes("s"))
	assert.Len(t, m.Periods, 2)
	assert.Equal(t, "standard", m.PresetName)
	assert.False(t, m.ShowEditForm)
	assert.False(t, m.ShowSalaryForm)

	m = press(m, runes("r"))
	assert.False(t, m.Session.Running())
	assert.Zero(t, m.Session.Rates)
}

func TestAddAndDeletePeriods(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("n"))
	require.Len(t, m.Periods, 3)
	assert.Equal(t, "09:00-18:00", m.Periods[2].String())
	assert.Equal(t, 2, m.SelectedIndex)
	assert.Empty(t, m.PresetName)

	m = press(m, runes("d"), runes("d"))
	require.Len(t, m.Periods, 1)
	assert.NoError(t, m.Err)

	m = press(m, runes("d"))
	assert.Len(t, m.Periods, 1)
	assert.ErrorIs(t, m.Err, errLastPeriod)
}

func TestEditPeriodForm(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("e"))
	require.True(t, m.ShowEditForm)
	assert.Equal(t, "09:00", m.StartInput)
	assert.Equal(t, "12:00", m.EndInput)

	backspaces := make([]tea.Msg, 5)
	for i := range backspaces {
		backspaces[i] = tea.KeyMsg{Type: tea.KeyBackspace}
	}
	m = press(m, backspaces...)
	m = press(m, runes("0"), runes("8"), runes(":"), runes("3"), runes("0"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.InputFocus)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.ShowEditForm)
	assert.Equal(t, "08:30-12:00", m.Periods[0].String())
	assert.Empty(t, m.PresetName)
}

func TestEditPeriodRejectsInverted(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("e"))
	m.StartInput = "13:00"
	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.ShowEditForm, "form stays open on error")
	assert.ErrorIs(t, m.Err, schedule.ErrInvalidPeriod)
	assert.Equal(t, "09:00-12:00", m.Periods[0].String())

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowEditForm)
	assert.NoError(t, m.Err)
}

func TestSalaryForm(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("s"))
	require.True(t, m.ShowSalaryForm)
	assert.Equal(t, "250", m.SalaryInput)

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	m = press(m, runes("0"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.ShowSalaryForm)
	assert.ErrorIs(t, m.Err, errInvalidSalary)

	m = press(m, runes("3"), runes("2"), runes("0"), runes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.ShowSalaryForm)
	assert.Equal(t, 320.0, m.DailySalary)
}

func TestPresetCycle(t *testing.T) {
	m := newTestModel(t)
	m.SelectedIndex = 1
	m = press(m, runes("p"))
	assert.Equal(t, "nine-to-five", m.PresetName)
	assert.Equal(t, "09:00-17:00", m.Periods.String())
	assert.Equal(t, 0, m.SelectedIndex)
}

func TestStartRejectsZeroDuration(t *testing.T) {
	m := newTestModel(t)
	m.Periods = schedule.MustParse("09:00-09:00")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Session.Running())
	assert.ErrorIs(t, m.Err, earnings.ErrZeroDurationSchedule)
	assert.Contains(t, m.View(), "Error:")
}

func TestStartRejectsZeroSalary(t *testing.T) {
	m, err := NewModel(Options{
		Schedule: schedule.MustParse("09:00-12:00"),
		Location: time.UTC,
		Clock:    earnings.FixedClock(testNow),
	})
	require.NoError(t, err)
	assert.Zero(t, m.DailySalary)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.Err, earnings.ErrZeroSalary)
	assert.False(t, m.Session.Running())
}

func TestLanguageToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("l"))
	assert.Equal(t, text.Chinese, m.Lang)
	assert.Contains(t, m.View(), "日薪")

	m = press(m, runes("l"))
	assert.Equal(t, text.English, m.Lang)
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.SelectedIndex)
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.SelectedIndex)
	m = press(m, runes("k"))
	assert.Equal(t, 0, m.SelectedIndex)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

package cli

import (
	"bytes"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneytracker/internal/earnings"
	"moneytracker/internal/schedule"
)

var envVars = []string{
	"MONEYTRACKER_SALARY",
	"MONEYTRACKER_PERIODS",
	"MONEYTRACKER_PRESET",
	"MONEYTRACKER_TZ",
	"MONEYTRACKER_REFRESH",
	"MONEYTRACKER_LANG",
	"MONEYTRACKER_ADDR",
	"MONEYTRACKER_LOG_FILE",
}

func execute(t *testing.T, now time.Time, args ...string) (string, error) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
	app := &App{
		Clock:         earnings.FixedClock(now),
		IsInteractive: func() bool { return false },
	}
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var noon = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

func TestStatusAtTimeOfDay(t *testing.T) {
	out, err := execute(t, noon,
		"status", "--tz", "UTC", "--salary", "250",
		"--periods", "09:00-12:00,14:00-18:00", "--at", "10:00")
	require.NoError(t, err)

	assert.Contains(t, out, "Current time: 2025-06-16 10:00:00 UTC")
	assert.Contains(t, out, "Earned: $35.71")
	assert.Contains(t, out, "Progress: 14.29%")
	assert.Contains(t, out, "Time per $1: 1m40s")
	assert.Contains(t, out, "Currently in work time (09:00-12:00)")
}

func TestRootFallsBackToStatusWithoutTerminal(t *testing.T) {
	out, err := execute(t, time.Date(2025, 6, 16, 13, 0, 0, 0, time.UTC),
		"--tz", "UTC", "--preset", "nine-to-five")
	require.NoError(t, err)

	assert.Contains(t, out, "Earned: $125.00")
	assert.Contains(t, out, "Progress: 50.00%")
}

func TestStatusChinese(t *testing.T) {
	out, err := execute(t, noon, "status", "--tz", "UTC", "--lang", "zh")
	require.NoError(t, err)
	assert.Contains(t, out, "日薪")
}

func TestStatusZeroDurationSchedule(t *testing.T) {
	_, err := execute(t, noon, "status", "--tz", "UTC", "--periods", "09:00-09:00")
	assert.ErrorIs(t, err, earnings.ErrZeroDurationSchedule)
}

func TestStatusRejectsBadInput(t *testing.T) {
	cases := map[string][]string{
		"bad at":       {"status", "--at", "25:00"},
		"bad timezone": {"status", "--tz", "Mars/Olympus"},
		"bad preset":   {"status", "--preset", "nope"},
		"zero salary":  {"status", "--salary", "0"},
		"zero refresh": {"--refresh", "0s"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, noon, args...)
			assert.Error(t, err)
		})
	}
}

func TestStatusRejectsEndOfDay(t *testing.T) {
	_, err := execute(t, noon, "status", "--tz", "UTC", "--preset", "night-shift", "--at", "24:00")
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
}

func TestRefreshFlagOnSubcommands(t *testing.T) {
	_, err := execute(t, noon, "status", "--tz", "UTC", "--refresh", "5s")
	assert.NoError(t, err)

	_, err = execute(t, noon, "status", "--tz", "UTC", "--refresh", "0s")
	assert.Error(t, err)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	for _, v := range envVars {
		t.Setenv(v, "")
	}
	t.Setenv("MONEYTRACKER_SALARY", "400")
	t.Setenv("MONEYTRACKER_PERIODS", "08:00-12:00")
	t.Setenv("MONEYTRACKER_TZ", "UTC")

	run := func(args ...string) string {
		app := &App{Clock: earnings.FixedClock(noon), IsInteractive: func() bool { return false }}
		root := NewRootCmd(app)
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return out.String()
	}

	assert.Contains(t, run("status", "--at", "10:00"), "Earned: $200.00")
	assert.Contains(t, run("status", "--at", "10:00", "--salary", "800"), "Earned: $400.00")
	assert.Contains(t, run("status", "--at", "10:00", "--preset", "nine-to-five"), "Earned: $50.00")
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, noon, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "09:00-12:00,14:00-18:00")
	assert.Contains(t, out, "night-shift")
}

func TestValidateSalary(t *testing.T) {
	assert.NoError(t, validateSalary("250"))
	assert.NoError(t, validateSalary(" 312,5 "))
	assert.Error(t, validateSalary("0"))
	assert.Error(t, validateSalary("-3"))
	assert.Error(t, validateSalary("abc"))
	assert.Error(t, validateSalary("NaN"))

	v, err := parseSalary("312,5")
	require.NoError(t, err)
	assert.Equal(t, 312.5, v)
	_, err = parseSalary("abc")
	assert.Error(t, err)
}

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, validateTimezone(""))
	assert.NoError(t, validateTimezone("Europe/Berlin"))
	assert.Error(t, validateTimezone("Nowhere/Special"))
}

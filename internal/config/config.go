package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"moneytracker/internal/preset"
	"moneytracker/internal/schedule"
	"moneytracker/internal/text"
)

// Config holds environment-driven configuration. Command-line flags override
// individual fields after Load.
type Config struct {
	DailySalary float64
	Periods     string // e.g. 09:00-12:00,14:00-18:00; empty means use Preset
	Preset      string
	Timezone    string // IANA name, e.g. Asia/Shanghai; empty means the local zone
	Refresh     time.Duration
	Lang        text.Lang
	Addr        string
	LogFile     string
}

// DefaultConfig mirrors the out-of-the-box dashboard: $250 a day on the standard preset.
func DefaultConfig() Config {
	return Config{
		DailySalary: 250,
		Preset:      preset.Default,
		Refresh:     time.Second,
		Lang:        text.English,
		Addr:        ":8484",
	}
}

// Load reads MONEYTRACKER_* variables, falling back to defaults for any unset value.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MONEYTRACKER_SALARY"); v != "" {
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", "."), 64)
		if err != nil {
			return cfg, fmt.Errorf("MONEYTRACKER_SALARY must be a number: %w", err)
		}
		cfg.DailySalary = f
	}
	if v := os.Getenv("MONEYTRACKER_PERIODS"); v != "" {
		cfg.Periods = v
	}
	if v := os.Getenv("MONEYTRACKER_PRESET"); v != "" {
		cfg.Preset = v
	}
	if v := os.Getenv("MONEYTRACKER_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("MONEYTRACKER_REFRESH"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("MONEYTRACKER_REFRESH must be a positive duration, got %q", v)
		}
		cfg.Refresh = d
	}
	if v := os.Getenv("MONEYTRACKER_LANG"); v != "" {
		cfg.Lang = text.ParseLang(v)
	}
	if v := os.Getenv("MONEYTRACKER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("MONEYTRACKER_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	return cfg, nil
}

// Schedule resolves the configured periods, or the preset when none are given.
func (c Config) Schedule() (schedule.Schedule, error) {
	if strings.TrimSpace(c.Periods) != "" {
		s, err := schedule.Parse(c.Periods)
		if err != nil {
			return nil, fmt.Errorf("parsing periods: %w", err)
		}
		return s, nil
	}
	p, err := preset.Lookup(c.Preset)
	if err != nil {
		return nil, err
	}
	return p.Schedule, nil
}

// Location loads the configured zone; an empty name is the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

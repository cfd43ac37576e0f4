package api

import (
	"time"

	"github.com/shopspring/decimal"

	"moneytracker/internal/earnings"
	"moneytracker/internal/preset"
)

type PresetDTO struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Periods      string `json:"periods"`
	TotalSeconds uint64 `json:"total_seconds"`
}

type StartSessionRequest struct {
	Periods     string   `json:"periods,omitempty"`
	DailySalary *float64 `json:"daily_salary,omitempty"`
}

type SessionDTO struct {
	ID               string          `json:"id,omitempty"`
	State            earnings.State  `json:"state"`
	Periods          string          `json:"periods,omitempty"`
	DailySalary      decimal.Decimal `json:"daily_salary"`
	TotalSeconds     uint64          `json:"total_seconds"`
	MoneyPerSecond   float64         `json:"money_per_second"`
	SecondsPerDollar float64         `json:"seconds_per_dollar"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	StartedAt        *time.Time      `json:"started_at,omitempty"`
	Snapshot         SnapshotDTO     `json:"snapshot"`
}

type SnapshotDTO struct {
	At              time.Time       `json:"at"`
	ElapsedSeconds  float64         `json:"elapsed_seconds"`
	Earned          decimal.Decimal `json:"earned"`
	ProgressPercent float64         `json:"progress_percent"`
	Working         bool            `json:"working"`
	CurrentPeriod   string          `json:"current_period,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}

func toPresetDTO(p preset.Preset) PresetDTO {
	return PresetDTO{
		Name:         p.Name,
		Description:  p.Description,
		Periods:      p.Schedule.String(),
		TotalSeconds: p.Schedule.TotalSeconds(),
	}
}

func toSessionDTO(s *earnings.Session, now time.Time) SessionDTO {
	snap := s.Snapshot(now)
	dto := SessionDTO{
		ID:               s.ID,
		State:            s.State,
		Periods:          s.Schedule.String(),
		DailySalary:      earnings.Cents(s.Rates.DailySalary),
		TotalSeconds:     s.Rates.TotalSeconds,
		MoneyPerSecond:   s.Rates.MoneyPerSecond,
		SecondsPerDollar: s.Rates.SecondsPerDollar,
		HourlyRate:       earnings.Cents(s.Rates.Hourly()),
		Snapshot: SnapshotDTO{
			At:              snap.At,
			ElapsedSeconds:  snap.ElapsedSeconds,
			Earned:          earnings.Cents(snap.Earned),
			ProgressPercent: snap.Progress,
			Working:         snap.Working,
		},
	}
	if s.Running() {
		started := s.StartedAt
		dto.StartedAt = &started
	}
	if snap.Working {
		dto.Snapshot.CurrentPeriod = snap.Current.String()
	}
	return dto
}

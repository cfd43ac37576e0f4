// Package earnings turns a work schedule and a daily salary into money earned so far.
//
// Every function here is pure: the result depends only on the schedule, the
// salary and the observed time, so callers may poll as often as they like.
package earnings

import (
	"errors"
	"fmt"
	"math"
	"time"

	"moneytracker/internal/schedule"
)

var (
	// ErrZeroDurationSchedule blocks a session whose periods add up to no paid time.
	ErrZeroDurationSchedule = errors.New("schedule has zero paid duration")

	// ErrZeroSalary blocks a session whose daily salary is not a positive amount.
	ErrZeroSalary = errors.New("daily salary must be greater than zero")

	// ErrSessionRunning is returned when starting a session that is already running.
	ErrSessionRunning = errors.New("tracking session already running")
)

// Rates are derived once when a session starts and stay fixed while it runs.
type Rates struct {
	DailySalary      float64
	TotalSeconds     uint64
	MoneyPerSecond   float64
	SecondsPerDollar float64
}

// StartSession validates the inputs and derives the per-second rates.
// Nothing is returned on failure, so a caller never observes a partial start.
func StartSession(s schedule.Schedule, dailySalary float64) (Rates, error) {
	total := s.TotalSeconds()
	if err := s.Validate(); err != nil {
		if total == 0 && errors.Is(err, schedule.ErrInvalidPeriod) {
			return Rates{}, fmt.Errorf("%w: %w", ErrZeroDurationSchedule, err)
		}
		return Rates{}, fmt.Errorf("validating schedule: %w", err)
	}
	if dailySalary <= 0 || math.IsNaN(dailySalary) || math.IsInf(dailySalary, 0) {
		return Rates{}, ErrZeroSalary
	}
	if total == 0 {
		return Rates{}, ErrZeroDurationSchedule
	}

	mps := dailySalary / float64(total)
	return Rates{
		DailySalary:      dailySalary,
		TotalSeconds:     total,
		MoneyPerSecond:   mps,
		SecondsPerDollar: 1 / mps,
	}, nil
}

// ElapsedPaidSeconds sums, period by period, the paid time already behind now.
// Periods are placed on now's calendar date in now's location. Overlapping
// periods each contribute their own share.
func ElapsedPaidSeconds(s schedule.Schedule, now time.Time) float64 {
	var elapsed float64
	for _, p := range s {
		start := p.Start.On(now)
		end := p.End.On(now)

		switch {
		case now.Before(start):
			// not started yet
		case now.Before(end):
			elapsed += math.Min(now.Sub(start).Seconds(), float64(p.Seconds()))
		default:
			elapsed += float64(p.Seconds())
		}
	}
	return elapsed
}

func Earned(s schedule.Schedule, now time.Time, moneyPerSecond float64) float64 {
	return ElapsedPaidSeconds(s, now) * moneyPerSecond
}

// EarnedNow localizes now into loc before measuring. A nil loc keeps now's own zone.
func EarnedNow(s schedule.Schedule, rates Rates, now time.Time, loc *time.Location) float64 {
	if loc != nil {
		now = now.In(loc)
	}
	return Earned(s, now, rates.MoneyPerSecond)
}

// ProgressPercent is earned as a share of the daily salary; zero when there is no salary.
func ProgressPercent(earned, dailySalary float64) float64 {
	if dailySalary == 0 {
		return 0
	}
	return earned / dailySalary * 100
}

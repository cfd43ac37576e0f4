package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPeriod is returned when a period does not start strictly before it ends.
	ErrInvalidPeriod = errors.New("invalid period: start must be before end")

	// ErrInvalidTimeOfDay is returned for hours or minutes outside the clock range.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")

	// ErrEmptySchedule is returned when a schedule has no periods.
	ErrEmptySchedule = errors.New("schedule has no work periods")
)

// InvalidPeriodError names the offending period within a schedule.
type InvalidPeriodError struct {
	Index  int
	Period Period
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("period %d (%s): start must be before end", e.Index+1, e.Period)
}

func (e *InvalidPeriodError) Unwrap() error { return ErrInvalidPeriod }

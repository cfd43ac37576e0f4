// Package schedule models the paid work periods of a single calendar day.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is an hour/minute pair. 24:00 is allowed as an end-of-day value.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func At(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// Minutes returns the minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Valid() bool {
	if t.Hour == 24 {
		return t.Minute == 0
	}
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On materializes t on the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// ParseTimeOfDay accepts "HH:MM" or a bare hour "H".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := strings.TrimSpace(s)
	hourPart, minutePart, hasMinutes := strings.Cut(raw, ":")

	h, err := strconv.Atoi(hourPart)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeOfDay, s)
	}
	m := 0
	if hasMinutes {
		if len(minutePart) != 2 {
			return TimeOfDay{}, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeOfDay, s)
		}
		m, err = strconv.Atoi(minutePart)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeOfDay, s)
		}
	}

	t := TimeOfDay{Hour: h, Minute: m}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("%w: %q is out of range", ErrInvalidTimeOfDay, s)
	}
	return t, nil
}

// Period is a paid interval [Start, End) within a day.
type Period struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewPeriod(start, end TimeOfDay) Period {
	return Period{Start: start, End: end}
}

func (p Period) Validate() error {
	if !p.Start.Valid() || p.Start.Hour == 24 {
		return fmt.Errorf("%w: start %s", ErrInvalidTimeOfDay, p.Start)
	}
	if !p.End.Valid() {
		return fmt.Errorf("%w: end %s", ErrInvalidTimeOfDay, p.End)
	}
	if p.Start.Minutes() >= p.End.Minutes() {
		return ErrInvalidPeriod
	}
	return nil
}

// Seconds returns the paid length of the period. Invalid periods count as zero.
func (p Period) Seconds() uint64 {
	d := p.End.Minutes() - p.Start.Minutes()
	if d <= 0 {
		return 0
	}
	return uint64(d) * 60
}

func (p Period) Duration() time.Duration {
	return time.Duration(p.Seconds()) * time.Second
}

// Contains reports whether the time of day of t falls in [Start, End).
func (p Period) Contains(t time.Time) bool {
	sec := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return sec >= p.Start.Minutes()*60 && sec < p.End.Minutes()*60
}

func (p Period) String() string {
	return p.Start.String() + "-" + p.End.String()
}

// ParsePeriod accepts "HH:MM-HH:MM".
func ParsePeriod(s string) (Period, error) {
	startStr, endStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Period{}, fmt.Errorf("invalid period %q, expected HH:MM-HH:MM", s)
	}
	start, err := ParseTimeOfDay(startStr)
	if err != nil {
		return Period{}, err
	}
	end, err := ParseTimeOfDay(endStr)
	if err != nil {
		return Period{}, err
	}
	return Period{Start: start, End: end}, nil
}

// Schedule is an ordered list of work periods. Periods are neither sorted nor
// checked for overlap; overlapping time is counted once per period.
type Schedule []Period

// Validate fails on an empty schedule or on the first malformed period.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return ErrEmptySchedule
	}
	for i, p := range s {
		if err := p.Validate(); err != nil {
			if errors.Is(err, ErrInvalidPeriod) {
				return &InvalidPeriodError{Index: i, Period: p}
			}
			return fmt.Errorf("period %d: %w", i+1, err)
		}
	}
	return nil
}

// TotalSeconds sums the length of every period without clamping overlaps.
func (s Schedule) TotalSeconds() uint64 {
	var total uint64
	for _, p := range s {
		total += p.Seconds()
	}
	return total
}

func (s Schedule) Hours() float64 {
	return float64(s.TotalSeconds()) / 3600
}

// Working returns the first period containing the time of day of now.
func (s Schedule) Working(now time.Time) (Period, bool) {
	for _, p := range s {
		if p.Contains(now) {
			return p, true
		}
	}
	return Period{}, false
}

// WorkHours marks each hour of the day that intersects a period.
func (s Schedule) WorkHours() [24]bool {
	var hours [24]bool
	for _, p := range s {
		for h := 0; h < 24; h++ {
			if p.Start.Minutes() < (h+1)*60 && p.End.Minutes() > h*60 {
				hours[h] = true
			}
		}
	}
	return hours
}

// Clone returns a copy that does not share the backing array.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

func (s Schedule) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

// Parse reads a comma separated list such as "09:00-12:00,14:00-18:00".
// The result is not validated.
func Parse(s string) (Schedule, error) {
	var out Schedule
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		p, err := ParsePeriod(field)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// MustParse is Parse for literals known to be well formed.
func MustParse(s string) Schedule {
	out, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return out
}

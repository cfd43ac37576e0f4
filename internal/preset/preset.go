// Package preset holds the built-in work schedule templates.
package preset

import (
	"errors"
	"fmt"

	"moneytracker/internal/schedule"
)

var ErrUnknownPreset = errors.New("unknown preset")

const Default = "standard"

type Preset struct {
	Name        string
	Description string
	Schedule    schedule.Schedule
}

var presets = []Preset{
	{Name: "standard", Description: "Morning and afternoon with a two hour lunch", Schedule: schedule.MustParse("09:00-12:00,14:00-18:00")},
	{Name: "nine-to-five", Description: "Straight nine to five", Schedule: schedule.MustParse("09:00-17:00")},
	{Name: "nine-to-six", Description: "Straight nine to six", Schedule: schedule.MustParse("09:00-18:00")},
	{Name: "lunch-break", Description: "One hour lunch, out at half past five", Schedule: schedule.MustParse("09:00-12:00,13:00-17:30")},
	{Name: "early-bird", Description: "Early start, early finish", Schedule: schedule.MustParse("07:30-11:30,12:30-15:30")},
	{Name: "night-shift", Description: "Both ends of the day around midnight", Schedule: schedule.MustParse("00:00-06:00,22:00-24:00")},
}

// All returns the presets in display order.
func All() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		p.Schedule = p.Schedule.Clone()
		out[i] = p
	}
	return out
}

func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			p.Schedule = p.Schedule.Clone()
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Next returns the preset following name, wrapping around. Unknown names start over.
func Next(name string) Preset {
	for i, p := range presets {
		if p.Name == name {
			n := presets[(i+1)%len(presets)]
			n.Schedule = n.Schedule.Clone()
			return n
		}
	}
	first := presets[0]
	first.Schedule = first.Schedule.Clone()
	return first
}

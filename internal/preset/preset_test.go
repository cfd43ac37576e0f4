package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPresetsValidate(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			require.NoError(t, p.Schedule.Validate())
			assert.NotZero(t, p.Schedule.TotalSeconds())
			assert.NotEmpty(t, p.Description)
		})
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(Default)
	require.NoError(t, err)
	assert.Equal(t, "09:00-12:00,14:00-18:00", p.Schedule.String())
	assert.Equal(t, uint64(7*3600), p.Schedule.TotalSeconds())

	_, err = Lookup("four-day-week")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLookupReturnsCopy(t *testing.T) {
	p, err := Lookup("nine-to-five")
	require.NoError(t, err)
	p.Schedule[0].Start.Hour = 6

	again, err := Lookup("nine-to-five")
	require.NoError(t, err)
	assert.Equal(t, 9, again.Schedule[0].Start.Hour)
}

func TestNextWraps(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.Equal(t, names[1], Next(names[0]).Name)
	assert.Equal(t, names[0], Next(names[len(names)-1]).Name)
	assert.Equal(t, names[0], Next("nope").Name)
}

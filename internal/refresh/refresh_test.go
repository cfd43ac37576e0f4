package refresh

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerDeliversTicks(t *testing.T) {
	tk := New(5 * time.Millisecond)
	var got atomic.Int64

	tk.Start(func(time.Time) { got.Add(1) })
	assert.True(t, tk.Running())

	assert.Eventually(t, func() bool { return got.Load() >= 3 }, time.Second, time.Millisecond)
	tk.Stop()
	assert.False(t, tk.Running())
	assert.GreaterOrEqual(t, tk.Ticks(), uint64(3))
}

func TestTickerStopHaltsDelivery(t *testing.T) {
	tk := New(2 * time.Millisecond)
	var got atomic.Int64

	tk.Start(func(time.Time) { got.Add(1) })
	assert.Eventually(t, func() bool { return got.Load() >= 1 }, time.Second, time.Millisecond)
	tk.Stop()

	// Allow an in-flight callback to finish before sampling.
	time.Sleep(10 * time.Millisecond)
	after := got.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, got.Load())
}

func TestTickerStartStopIdempotent(t *testing.T) {
	tk := New(time.Hour)
	tk.Stop()
	tk.Start(func(time.Time) {})
	tk.Start(func(time.Time) {})
	tk.Stop()
	tk.Stop()
	assert.False(t, tk.Running())
}

func TestIntervalDefaults(t *testing.T) {
	assert.Equal(t, time.Second, New(0).Interval())

	tk := New(time.Second)
	tk.SetInterval(5 * time.Second)
	assert.Equal(t, 5*time.Second, tk.Interval())
	tk.SetInterval(-1)
	assert.Equal(t, 5*time.Second, tk.Interval())
}

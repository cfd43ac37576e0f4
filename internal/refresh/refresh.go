// Package refresh drives periodic re-rendering of the dashboard.
package refresh

import (
	"sync"
	"time"
)

// Ticker calls a function on every interval until stopped.
type Ticker struct {
	mu       sync.RWMutex
	running  bool
	interval time.Duration
	ticks    uint64
	stopChan chan struct{}
}

func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the tick loop. Calling Start on a running ticker does nothing.
func (t *Ticker) Start(onTick func(time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}

	t.running = true
	t.stopChan = make(chan struct{})
	stop := t.stopChan
	interval := t.interval

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				t.mu.Lock()
				if !t.running {
					t.mu.Unlock()
					return
				}
				t.ticks++
				t.mu.Unlock()
				onTick(now)
			}
		}
	}()
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	t.running = false
	close(t.stopChan)
}

// SetInterval takes effect on the next Start.
func (t *Ticker) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.interval = d
}

func (t *Ticker) Interval() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.interval
}

func (t *Ticker) Ticks() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ticks
}

func (t *Ticker) Running() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.running
}

package client

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of calls into one, running only the last
// function submitted within the delay window. A zero delay runs the function
// synchronously, which keeps tests deterministic.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// Do schedules fn after the delay, cancelling any previously scheduled call.
func (d *debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.delay <= 0 {
		fn()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

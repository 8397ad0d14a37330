package engine

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid-fire queries into one callback for the most
// recent value: the latest query wins and earlier pending ones are simply
// dropped. Used on the interactive search path, where every keystroke
// would otherwise trigger a catalog scan.
type Debouncer struct {
	delay time.Duration
	fn    func(string)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer builds a debouncer firing fn with the latest value once
// input has been quiet for delay.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger records a new value, resetting the quiet-period timer.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(value) })
}

// Stop cancels any pending callback. After Stop, Trigger is a no-op.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

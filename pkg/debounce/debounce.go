package debounce

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of calls into one, run after the window
// has passed without a new call. Only the last scheduled fn runs.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Flush stops the pending timer. It reports whether a call was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	pending := d.timer.Stop()
	d.timer = nil
	return pending
}

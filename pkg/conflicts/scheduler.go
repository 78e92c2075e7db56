package conflicts

import (
	"sync"
	"time"
)

// Scheduler decides when a requested recompute actually runs. The
// engine asks for a recompute after every order-affecting mutation;
// during bursts (repeated single-step moves) the debounced scheduler
// coalesces those requests into one trailing run. Flush forces the
// pending recompute to run immediately and is called at mutation-batch
// boundaries so callers observe up-to-date conflicts.
type Scheduler interface {
	// Schedule requests a run of fn. Implementations may defer or
	// coalesce, but a scheduled fn must eventually run.
	Schedule(fn func())

	// Flush runs the pending fn now, if any.
	Flush()

	// Stop discards any pending run.
	Stop()
}

// Immediate runs every scheduled function synchronously. Used in tests
// and wherever deterministic timing matters more than coalescing.
type Immediate struct{}

func (Immediate) Schedule(fn func()) { fn() }
func (Immediate) Flush()             {}
func (Immediate) Stop()              {}

// Debounced coalesces scheduled runs into one trailing invocation per
// quiet window.
type Debounced struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
}

// NewDebounced creates a trailing-edge debounced scheduler.
func NewDebounced(delay time.Duration) *Debounced {
	return &Debounced{delay: delay}
}

// Schedule stores fn as the pending run and (re)starts the quiet
// window. Only the latest fn survives coalescing.
func (d *Debounced) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debounced) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Flush runs the pending recompute immediately instead of waiting out
// the quiet window.
func (d *Debounced) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop discards the pending run without executing it.
func (d *Debounced) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = nil
}

package panel

import (
	"sync"
	"time"
)

// deferredTask runs at most one pending callback. Scheduling again supersedes
// the pending callback, and callbacks never run concurrently with each other.
type deferredTask struct {
	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending chan struct{}

	run sync.Mutex
}

func (d *deferredTask) Schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.gen++
	gen := d.gen
	done := make(chan struct{})
	d.pending = done

	d.timer = time.AfterFunc(delay, func() {
		defer close(done)

		d.run.Lock()
		defer d.run.Unlock()

		d.mu.Lock()
		current := d.gen == gen
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Cancel drops the pending callback, if any.
func (d *deferredTask) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.gen++
}

// Done is closed once the most recently scheduled callback ran or was dropped.
func (d *deferredTask) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return d.pending
}

func (d *deferredTask) cancelLocked() {
	// A timer that already fired closes its own channel.
	if d.timer != nil && d.timer.Stop() {
		close(d.pending)
	}
	d.timer = nil
}

package playback

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Driver advances an Engine on a timed interval while the engine is
// playing, and stops itself as soon as the mode leaves playing. It is
// headless: it has no tie to any UI lifecycle and works the same under a
// test, a terminal replay, or a frame feed.
//
// Start is idempotent; Stop is idempotent and guarantees that no Advance
// call happens after it returns. The interval may be changed during
// playback and takes effect on the next tick.
type Driver struct {
	engine   *Engine
	interval atomic.Int64

	// AfterAdvance, when set before Start, runs on the tick goroutine after
	// every successful advance. Observers use it to push the new frame.
	AfterAdvance func()

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver creates a stopped driver over the given engine. A non-positive
// interval falls back to DefaultInterval.
func NewDriver(engine *Engine, interval time.Duration) *Driver {
	d := &Driver{engine: engine}
	d.SetInterval(interval)

	return d
}

// SetInterval updates the tick interval. During playback the new interval
// applies from the next tick; no restart is required.
func (d *Driver) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	d.interval.Store(int64(interval))
}

// Interval returns the currently configured tick interval.
func (d *Driver) Interval() time.Duration {
	return time.Duration(d.interval.Load())
}

// Running reports whether the tick loop is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.done != nil
}

// Start launches the tick loop. Calling Start while the loop is already
// running is a no-op, so no duplicate timers can exist. The loop ends when
// the engine leaves the playing mode, the context is cancelled, or Stop is
// called.
func (d *Driver) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	d.cancel = cancel
	d.done = done

	go d.run(ctx, done)
}

// Stop cancels the tick loop and waits for it to exit. After Stop returns
// no further Advance call will occur, including ticks that were already
// scheduled. Stopping a stopped driver is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()

	cancel := d.cancel
	done := d.done
	d.cancel = nil
	d.done = nil

	d.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// run is the tick loop. The timer is always released on exit, whatever the
// exit path.
func (d *Driver) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer d.clear(done)

	timer := time.NewTimer(d.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if d.engine.Mode() != ModePlaying {
				return
			}

			d.engine.Advance()

			if d.AfterAdvance != nil {
				d.AfterAdvance()
			}

			if d.engine.Mode() != ModePlaying {
				return
			}

			timer.Reset(d.Interval())
		}
	}
}

// clear resets the running state when the loop exits on its own, so a later
// Start is not blocked by a dead loop's bookkeeping.
func (d *Driver) clear(done chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.done == done {
		if d.cancel != nil {
			d.cancel()
		}

		d.cancel = nil
		d.done = nil
	}
}

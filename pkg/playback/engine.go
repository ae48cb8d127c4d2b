// Package playback holds the state machine that walks a generated step
// trace, and the timed driver that advances it during live playback. The
// engine owns the cursor exclusively; the trace itself is immutable and
// safely shared with any number of read-only observers.
package playback

import (
	"sync"

	"github.com/sortviz/sortviz/pkg/step"
)

// Mode is the engine's coarse playback state.
type Mode string

// Playback modes.
const (
	ModeIdle     Mode = "idle"
	ModePlaying  Mode = "playing"
	ModePaused   Mode = "paused"
	ModeComplete Mode = "complete"
)

// cursorBeforeStart is the cursor position before the first step, displaying
// the untouched input.
const cursorBeforeStart = -1

// Engine is the playback state machine over an immutable step sequence.
// Out-of-range navigation is absorbed as a no-op, never an error: the
// visualization loop must keep running no matter what a control surface
// sends. The zero value is not usable; construct with NewEngine.
//
// A small mutex serializes mutating operations because the live Driver and
// direct navigation are two distinct callers.
type Engine struct {
	mu       sync.Mutex
	steps    []step.Step
	original []int
	cursor   int
	mode     Mode
	totals   step.Stats
}

// NewEngine creates an empty engine in the idle state.
func NewEngine() *Engine {
	return &Engine{cursor: cursorBeforeStart, mode: ModeIdle}
}

// Load replaces the step sequence and resets the cursor and mode. The total
// stats are cached from the final step. The original input is recovered from
// the first snapshot, which differs from the input only in state fields.
func (e *Engine) Load(steps []step.Step) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.steps = steps
	e.cursor = cursorBeforeStart
	e.mode = ModeIdle

	if len(steps) == 0 {
		e.original = nil
		e.totals = step.Stats{}

		return
	}

	e.original = step.Values(steps[0].Snapshot)
	e.totals = steps[len(steps)-1].Stats
}

// Play transitions to playing. A finished trace replays from the start.
// Playing an empty sequence is a no-op. Play never advances the cursor
// itself; advancement belongs to the Driver or to explicit navigation.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.steps) == 0 {
		return
	}

	if e.cursor >= len(e.steps)-1 {
		e.cursor = cursorBeforeStart
	}

	e.mode = ModePlaying
}

// Pause transitions to paused without touching the cursor.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModePaused
}

// Advance moves the cursor one step forward. At the last step it is a
// no-op; reaching the last step sets the complete mode.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cursor >= len(e.steps)-1 {
		return
	}

	e.cursor++

	if e.cursor == len(e.steps)-1 {
		e.mode = ModeComplete
	}
}

// Retreat moves the cursor one step back and pauses. From the first step it
// lands on the before-start position.
func (e *Engine) Retreat() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cursor <= 0 {
		e.cursor = cursorBeforeStart
	} else {
		e.cursor--
	}

	e.mode = ModePaused
}

// Seek jumps the cursor to the given step index and pauses. Out-of-range
// indices are a no-op.
func (e *Engine) Seek(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.steps) {
		return
	}

	e.cursor = index
	e.mode = ModePaused
}

// Reset returns to the before-start position in the idle state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cursor = cursorBeforeStart
	e.mode = ModeIdle
}

// CanAdvance reports whether the cursor has steps ahead of it.
func (e *Engine) CanAdvance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cursor < len(e.steps)-1
}

// CanRetreat reports whether the cursor can move backward.
func (e *Engine) CanRetreat() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cursor >= 0
}

// Mode returns the current playback mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.mode
}

// Cursor returns the current cursor position, -1 meaning before the start.
func (e *Engine) Cursor() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cursor
}

// StepCount returns the length of the loaded sequence.
func (e *Engine) StepCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.steps)
}

// CurrentStep returns the step under the cursor, nil before the start.
func (e *Engine) CurrentStep() *step.Step {
	e.mu.Lock()
	defer e.mu.Unlock()

	return step.Current(e.steps, e.cursor)
}

// Progress reports playback progress as a percentage in [0, 100].
func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return step.Progress(e.steps, e.cursor)
}

// DisplayArray resolves the element slice to render for the current cursor.
func (e *Engine) DisplayArray() []step.Element {
	e.mu.Lock()
	defer e.mu.Unlock()

	return step.DisplayArray(e.steps, e.cursor, e.original)
}

// CumulativeStats returns the stats as of the current cursor, inclusive;
// zero before the start.
func (e *Engine) CumulativeStats() step.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := step.Current(e.steps, e.cursor)
	if current == nil {
		return step.Stats{}
	}

	return current.Stats
}

// Totals returns the whole-trace stats cached at Load time.
func (e *Engine) Totals() step.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.totals
}

// Package stopwatch implements the timing core: a start/pause/reset state
// machine with lap splits. It performs no scheduling and no rendering.
package stopwatch

import (
	"time"

	"github.com/akyairhashvil/lapwatch/internal/models"
)

// Engine owns one stopwatch. It is not safe for concurrent use; callers
// serialize access (the TUI does so by mutating it only from Update).
type Engine struct {
	clock Clock

	state       models.TimerState
	anchor      time.Time     // elapsed = now - anchor while running
	accumulated time.Duration // banked while not running

	laps     []models.Lap
	lapSeq   int
	baseline time.Duration // elapsed the next split is measured from
}

// New returns an idle engine reading time from clock.
// A nil clock means SystemClock.
func New(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	return &Engine{clock: clock, state: models.StateIdle}
}

func (e *Engine) now() time.Time {
	if e.clock == nil {
		return SystemClock.Now()
	}
	return e.clock.Now()
}

// Start moves Idle or Paused to Running. It is a no-op while running.
func (e *Engine) Start() {
	if e.state == models.StateRunning {
		return
	}
	e.anchor = e.now().Add(-e.accumulated)
	e.state = models.StateRunning
}

// Pause freezes elapsed at the instant of the call. No-op unless running.
func (e *Engine) Pause() {
	if e.state != models.StateRunning {
		return
	}
	e.accumulated = e.Elapsed()
	e.state = models.StatePaused
}

// Reset returns the engine to its initial idle state from any state.
func (e *Engine) Reset() {
	e.Pause()
	e.state = models.StateIdle
	e.accumulated = 0
	e.anchor = time.Time{}
	e.laps = nil
	e.lapSeq = 0
	e.baseline = 0
}

// Lap records a split while running with at least a millisecond elapsed.
// The bool reports whether a lap was recorded.
func (e *Engine) Lap() (models.Lap, bool) {
	if e.state != models.StateRunning {
		return models.Lap{}, false
	}
	elapsed := e.Elapsed()
	if elapsed < time.Millisecond {
		return models.Lap{}, false
	}
	e.lapSeq++
	lap := models.Lap{
		Number: e.lapSeq,
		Total:  elapsed,
		Split:  elapsed - e.baseline,
	}
	e.baseline = elapsed
	e.laps = append(e.laps, lap)
	return lap, true
}

// ClearLaps empties the lap log without touching the timer. The next split
// is measured from the current elapsed time.
func (e *Engine) ClearLaps() {
	e.laps = nil
	e.lapSeq = 0
	e.baseline = e.Elapsed()
}

// Elapsed returns the running total, computed fresh from the clock while
// running.
func (e *Engine) Elapsed() time.Duration {
	if e.state != models.StateRunning {
		return e.accumulated
	}
	d := e.now().Sub(e.anchor)
	if d < 0 {
		return 0
	}
	return d
}

// CurrentSplit is the time accrued toward the next lap.
func (e *Engine) CurrentSplit() time.Duration {
	return e.Elapsed() - e.baseline
}

// Laps returns a copy of the lap log, oldest first.
func (e *Engine) Laps() []models.Lap {
	if len(e.laps) == 0 {
		return nil
	}
	out := make([]models.Lap, len(e.laps))
	copy(out, e.laps)
	return out
}

// IsRunning reports whether the engine is in the Running state.
func (e *Engine) IsRunning() bool {
	return e.state == models.StateRunning
}

// State reports Idle, Running or Paused.
func (e *Engine) State() models.TimerState {
	return e.state
}

// Snapshot reads state, elapsed and laps together.
func (e *Engine) Snapshot() models.Snapshot {
	elapsed := e.Elapsed()
	return models.Snapshot{
		State:   e.state,
		Elapsed: elapsed,
		Current: elapsed - e.baseline,
		Laps:    e.Laps(),
	}
}

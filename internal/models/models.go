package models

import "time"

// TimerState enumerates the states of a stopwatch.
type TimerState string

const (
	StateIdle    TimerState = "idle"
	StateRunning TimerState = "running"
	StatePaused  TimerState = "paused"
)

// Lap is a single recorded split. Laps are never modified once recorded.
type Lap struct {
	Number int           // 1-based, consecutive
	Total  time.Duration // elapsed at the moment of the lap
	Split  time.Duration // Total minus the previous lap baseline
}

// Snapshot is the stopwatch state read at a single instant.
type Snapshot struct {
	State   TimerState
	Elapsed time.Duration
	Current time.Duration // elapsed since the lap baseline
	Laps    []Lap
}

// LapStats summarizes a lap log.
type LapStats struct {
	Count    int
	Best     time.Duration
	Worst    time.Duration
	HasBest  bool // false when the log is empty
	HasWorst bool // false with fewer than two laps
}

// LapRow is a lap formatted for display.
type LapRow struct {
	Number  int
	Total   string
	Split   string
	IsBest  bool
	IsWorst bool
}

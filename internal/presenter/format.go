// Package presenter derives display strings and lap statistics from engine
// state. Everything here is a pure function of its arguments.
package presenter

import (
	"fmt"
	"time"
)

// FormatTime renders d as MM:SS.cc (minutes, seconds, hundredths).
// Minutes are not wrapped into hours.
func FormatTime(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	hundredths := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, hundredths)
}

// LapCountLabel returns "1 lap" or "n laps".
func LapCountLabel(n int) string {
	if n == 1 {
		return "1 lap"
	}
	return fmt.Sprintf("%d laps", n)
}

package testutil

import "time"

// FakeClock is a manually advanced clock for deterministic timing tests.
type FakeClock struct {
	now time.Time
}

func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// AdvanceMs moves the clock forward by n milliseconds.
func (c *FakeClock) AdvanceMs(n int64) {
	c.Advance(Ms(n))
}

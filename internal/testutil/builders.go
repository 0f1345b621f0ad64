package testutil

import (
	"time"

	"github.com/akyairhashvil/lapwatch/internal/models"
)

// LapLogBuilder provides fluent API for creating test lap logs.
type LapLogBuilder struct {
	laps     []models.Lap
	baseline time.Duration
}

func NewLapLog() *LapLogBuilder {
	return &LapLogBuilder{}
}

// WithTotals appends laps recorded at the given totals, computing splits the
// way the engine does.
func (b *LapLogBuilder) WithTotals(totals ...time.Duration) *LapLogBuilder {
	for _, total := range totals {
		b.laps = append(b.laps, models.Lap{
			Number: len(b.laps) + 1,
			Total:  total,
			Split:  total - b.baseline,
		})
		b.baseline = total
	}
	return b
}

// WithSplits appends laps whose splits are given directly.
func (b *LapLogBuilder) WithSplits(splits ...time.Duration) *LapLogBuilder {
	for _, split := range splits {
		b.baseline += split
		b.laps = append(b.laps, models.Lap{
			Number: len(b.laps) + 1,
			Total:  b.baseline,
			Split:  split,
		})
	}
	return b
}

func (b *LapLogBuilder) Build() []models.Lap {
	out := make([]models.Lap, len(b.laps))
	copy(out, b.laps)
	return out
}

// Ms is shorthand for n milliseconds.
func Ms(n int64) time.Duration {
	return time.Duration(n) * time.Millisecond
}

package config

// Layout constants.
const (
	// DefaultWidth is used before the first WindowSizeMsg arrives.
	DefaultWidth = 60

	// MinContentWidth is the narrowest the lap panel is drawn.
	MinContentWidth = 30

	// MaxContentWidth caps the lap panel on wide terminals.
	MaxContentWidth = 72

	// ProgressWidth is the preferred width of the split progress bar.
	ProgressWidth = 40
)

// Display limits.
const (
	// MaxVisibleLaps limits laps drawn before the list is cut.
	MaxVisibleLaps = 12

	// TruncationSuffix appended to truncated rows.
	TruncationSuffix = "…"

	// EmptyLapsText is shown when no laps are recorded.
	EmptyLapsText = "No lap times recorded"
)

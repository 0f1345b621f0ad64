package config

import "time"

// Timer durations.
const (
	// TickInterval is the display refresh cadence while running.
	TickInterval = 10 * time.Millisecond
	// CopyFeedback is how long the "Copied!" status stays visible.
	CopyFeedback = 1500 * time.Millisecond
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings keys.
const (
	SettingTheme = "theme"
)

// Application settings.
const (
	AppName    = "lapwatch"
	DBFileName = "lapwatch.db"

	// EnvDBPath overrides the settings database location.
	EnvDBPath = "LAPWATCH_DB"
	// EnvDebug enables the debug log file when non-empty.
	EnvDebug = "LAPWATCH_DEBUG"
	// DebugLogFile is written in the data dir when EnvDebug is set.
	DebugLogFile = "debug.log"
)

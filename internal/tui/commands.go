package tui

import (
	"time"

	"github.com/akyairhashvil/lapwatch/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg refreshes the display. Ticks from an older generation are stale
// and dropped, which is how pause and reset cancel the refresh loop.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// statusClearMsg clears a transient status line.
type statusClearMsg struct {
	Gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

func clearStatusCmd(gen int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return statusClearMsg{Gen: gen} })
}

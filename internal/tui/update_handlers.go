package tui

import (
	"fmt"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/presenter"
	"github.com/akyairhashvil/lapwatch/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	running := func(m Model) bool { return m.engine.IsRunning() }
	stopped := func(m Model) bool { return !m.engine.IsRunning() }
	hasLaps := func(m Model) bool { return len(m.engine.Laps()) > 0 }
	canCopy := func(m Model) bool { return hasLaps(m) && m.copiedGen == 0 }

	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Handler: handleToggle,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Handler: handleStart,
		Enabled: stopped,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Handler: handlePause,
		Enabled: running,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lap")),
		Handler: handleLap,
		Enabled: running,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Handler: handleReset,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Handler: handleCopy,
		Enabled: canCopy,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear laps")),
		Handler: handleClearLaps,
		Enabled: hasLaps,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pdf")),
		Handler: handleExport,
		Enabled: hasLaps,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler: handleToggleTheme,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Handler: func(m Model) (Model, tea.Cmd) { return m, tea.Quit },
	})
	return r
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.progress.Width = util.Clamp(m.contentWidth(), 1, config.ProgressWidth)
	return m
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.engine.IsRunning() {
		return m, nil
	}
	m.refreshDisplay()
	return m, tickCmd(m.tickGen)
}

// cancelTick invalidates any outstanding tick.
func (m *Model) cancelTick() {
	m.tickGen++
}

func handleToggle(m Model) (Model, tea.Cmd) {
	if m.engine.IsRunning() {
		return handlePause(m)
	}
	return handleStart(m)
}

func handleStart(m Model) (Model, tea.Cmd) {
	if m.engine.IsRunning() {
		return m, nil
	}
	m.engine.Start()
	m.tickGen++
	m.refreshDisplay()
	return m, tickCmd(m.tickGen)
}

func handlePause(m Model) (Model, tea.Cmd) {
	m.engine.Pause()
	m.cancelTick()
	m.refreshDisplay()
	return m, nil
}

func handleReset(m Model) (Model, tea.Cmd) {
	m.engine.Reset()
	m.cancelTick()
	m.refreshDisplay()
	m.status = ""
	m.copiedGen = 0
	return m, nil
}

func handleLap(m Model) (Model, tea.Cmd) {
	m.engine.Lap()
	m.refreshDisplay()
	return m, nil
}

func handleClearLaps(m Model) (Model, tea.Cmd) {
	m.engine.ClearLaps()
	m.refreshDisplay()
	return m, nil
}

func handleCopy(m Model) (Model, tea.Cmd) {
	text := presenter.LapsText(m.engine.Laps())
	if text == "" {
		return m, nil
	}
	if err := m.copyToClipboard(text); err != nil {
		util.LogError("copy laps", err)
		cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", err), config.CopyFeedback)
		return m, cmd
	}
	cmd := m.setStatus("Copied!", config.CopyFeedback)
	m.copiedGen = m.statGen
	return m, cmd
}

func handleToggleTheme(m Model) (Model, tea.Cmd) {
	m.themeName, m.theme = themeOrDefault(nextTheme(m.themeName), config.ThemeDark)
	if m.settings == nil {
		return m, nil
	}
	if err := m.settings.SetSetting(m.ctx, config.SettingTheme, m.themeName); err != nil {
		util.LogError("save theme", err)
		cmd := m.setStatus("Theme not saved", config.CopyFeedback)
		return m, cmd
	}
	return m, nil
}

func handleExport(m Model) (Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	if len(snap.Laps) == 0 {
		return m, nil
	}
	path, err := ExportLapReport(m.reportDir, snap, m.clock.Now())
	if err != nil {
		util.LogError("export pdf", err)
		cmd := m.setStatus(fmt.Sprintf("Export failed: %v", err), 0)
		return m, cmd
	}
	cmd := m.setStatus("Report saved: "+path, 0)
	return m, cmd
}

package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/database"
	"github.com/akyairhashvil/lapwatch/internal/presenter"
	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model. It is the controller between key
// presses, the engine and the presenter, and owns the refresh tick.
type Model struct {
	ctx      context.Context
	engine   *stopwatch.Engine
	clock    stopwatch.Clock
	settings database.SettingsRepository
	keys     *HandlerRegistry

	help     help.Model
	progress progress.Model

	themeName string
	theme     Theme

	display string // last formatted elapsed time
	tickGen int
	status  string
	statGen int

	copiedGen int // statGen of the showing "Copied!" status, 0 when none

	copyToClipboard func(string) error
	reportDir       string

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the time source shared by the engine and report names.
func WithClock(c stopwatch.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyToClipboard = fn }
}

// WithReportDir sets where PDF lap reports are written.
func WithReportDir(dir string) Option {
	return func(m *Model) { m.reportDir = dir }
}

// WithDefaultTheme picks the theme used when none is saved.
func WithDefaultTheme(name string) Option {
	return func(m *Model) { m.themeName = name }
}

func NewModel(ctx context.Context, settings database.SettingsRepository, opts ...Option) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		ctx:             ctx,
		clock:           stopwatch.SystemClock,
		settings:        settings,
		help:            help.New(),
		progress:        progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		themeName:       config.ThemeDark,
		copyToClipboard: clipboard.WriteAll,
		reportDir:       ".",
		width:           config.DefaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.clock == nil {
		m.clock = stopwatch.SystemClock
	}
	m.engine = stopwatch.New(m.clock)
	m.progress.Width = config.ProgressWidth

	saved := ""
	if m.settings != nil {
		saved, _ = m.settings.GetSetting(ctx, config.SettingTheme)
	}
	m.themeName, m.theme = themeOrDefault(saved, m.themeName)

	m.keys = defaultKeyRegistry()
	m.refreshDisplay()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		next, cmd, _ := m.keys.Handle(m, msg)
		return next, cmd
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.handleTick(msg)
	case statusClearMsg:
		if msg.Gen == m.statGen {
			m.status = ""
		}
		if msg.Gen == m.copiedGen {
			m.copiedGen = 0
		}
		return m, nil
	}
	return m, nil
}

// refreshDisplay forwards the current elapsed time to the presenter.
func (m *Model) refreshDisplay() {
	m.display = presenter.FormatTime(m.engine.Elapsed())
}

// setStatus shows msg; a positive ttl clears it after that long.
func (m *Model) setStatus(msg string, ttl time.Duration) tea.Cmd {
	m.statGen++
	m.status = msg
	if ttl <= 0 {
		return nil
	}
	return clearStatusCmd(m.statGen, ttl)
}

// Engine exposes the underlying stopwatch, mainly for tests and embedding.
func (m Model) Engine() *stopwatch.Engine {
	return m.engine
}

// ThemeName returns the active theme key.
func (m Model) ThemeName() string {
	return m.themeName
}

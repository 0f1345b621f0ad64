package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/presenter"
	"github.com/akyairhashvil/lapwatch/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = config.DefaultWidth
	}
	return util.Clamp(w-4, config.MinContentWidth, config.MaxContentWidth)
}

func truncateLine(text string, max int) string {
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m Model) View() string {
	snap := m.engine.Snapshot()
	width := m.contentWidth()

	sections := []string{
		m.renderIndicator(snap.State),
		m.theme.Display.BorderForeground(m.theme.Border).Render(m.display),
		m.renderStats(snap.Laps),
	}
	if bar := m.renderSplitProgress(snap); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, "", m.renderLaps(snap.Laps, width))
	if m.status != "" {
		sections = append(sections, "", m.theme.Status.Render(truncateLine(m.status, width)))
	}
	h := m.help
	h.Styles.ShortKey = m.theme.Highlight
	sections = append(sections, "", h.ShortHelpView(m.keys.HelpBindings(m)))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.theme.Base.Render(body)
}

func (m Model) renderIndicator(state models.TimerState) string {
	switch state {
	case models.StateRunning:
		return m.theme.Running.Render("● RUNNING")
	case models.StatePaused:
		return m.theme.Idle.Render("❚❚ PAUSED")
	default:
		return m.theme.Idle.Render("○ READY")
	}
}

func (m Model) renderStats(laps []models.Lap) string {
	parts := []string{
		presenter.LapCountLabel(len(laps)),
		presenter.BestLabel(laps),
	}
	if stats := presenter.LapStatistics(laps); stats.HasWorst && stats.Worst != stats.Best {
		parts = append(parts, presenter.WorstLabel(laps))
	}
	return m.theme.Stats.Render(strings.Join(parts, "  ·  "))
}

// renderSplitProgress draws the current split against the best split.
func (m Model) renderSplitProgress(snap models.Snapshot) string {
	stats := presenter.LapStatistics(snap.Laps)
	if !stats.HasBest || stats.Best <= 0 || snap.State == models.StateIdle {
		return ""
	}
	ratio := float64(snap.Current) / float64(stats.Best)
	if ratio > 1 {
		ratio = 1
	}
	label := m.theme.Dim.Render(" split +" + presenter.FormatTime(snap.Current))
	return m.progress.ViewAs(ratio) + label
}

func (m Model) renderLaps(laps []models.Lap, width int) string {
	rows := presenter.RenderedLaps(laps)
	if len(rows) == 0 {
		return m.theme.Empty.Render(config.EmptyLapsText)
	}
	var lines []string
	for i, row := range rows {
		if i >= config.MaxVisibleLaps {
			more := fmt.Sprintf("… %d more", len(rows)-config.MaxVisibleLaps)
			lines = append(lines, m.theme.Dim.Render(more))
			break
		}
		line := truncateLine(fmt.Sprintf("Lap %-3d  %s  +%s", row.Number, row.Total, row.Split), width)
		style := m.theme.Lap
		switch {
		case row.IsBest:
			style = m.theme.LapBest
		case row.IsWorst:
			style = m.theme.LapWorst
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

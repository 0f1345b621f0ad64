package tui

import (
	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Display   lipgloss.Style
	Running   lipgloss.Style
	Idle      lipgloss.Style
	Stats     lipgloss.Style
	Lap       lipgloss.Style
	LapBest   lipgloss.Style
	LapWorst  lipgloss.Style
	Empty     lipgloss.Style
	Status    lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	config.ThemeDark: {
		Name:      "Dark",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Display:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Idle:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Stats:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Lap:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LapBest:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		LapWorst:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	config.ThemeLight: {
		Name:      "Light",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("25"),
		Display:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Idle:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Stats:     lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Lap:       lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		LapBest:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		LapWorst:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Italic(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	},
}

// nextTheme returns the theme a toggle switches to.
func nextTheme(name string) string {
	if name == config.ThemeDark {
		return config.ThemeLight
	}
	return config.ThemeDark
}

func themeOrDefault(name, fallback string) (string, Theme) {
	if t, ok := Themes[name]; ok {
		return name, t
	}
	if t, ok := Themes[fallback]; ok {
		return fallback, t
	}
	return config.ThemeDark, Themes[config.ThemeDark]
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/database"
	"github.com/akyairhashvil/lapwatch/internal/tui"
	"github.com/akyairhashvil/lapwatch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "lapwatch needs an interactive terminal.")
		os.Exit(1)
	}
	if err := run(context.Background()); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	dataDir := util.DataDir(config.AppName)

	// 1. Logging
	logCloser, err := util.SetupLogging(os.Getenv(config.EnvDebug) != "", dataDir, config.DebugLogFile)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logCloser.Close()

	// 2. Settings database
	dbPath := util.DBPath(config.AppName, config.DBFileName, config.EnvDBPath)
	db, err := openSettings(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// 3. Model and program
	model := tui.NewModel(ctx, db,
		tui.WithDefaultTheme(defaultTheme()),
		tui.WithReportDir(util.ReportsDir(config.AppName)),
	)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func openSettings(ctx context.Context, dbPath string) (*database.Database, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return database.Open(ctx, dbPath)
}

func defaultTheme() string {
	if lipgloss.HasDarkBackground() {
		return config.ThemeDark
	}
	return config.ThemeLight
}

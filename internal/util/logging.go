// Package util provides logging helpers and data/report path resolution.
package util

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// SetupLogging points the standard logger at dir/name when enabled and
// discards output otherwise, since the TUI owns the terminal. The returned
// closer is never nil.
func SetupLogging(enabled bool, dir, name string) (io.Closer, error) {
	if !enabled {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.NopCloser(nil), err
	}
	f, err := tea.LogToFile(filepath.Join(dir, name), "debug")
	if err != nil {
		return io.NopCloser(nil), err
	}
	return f, nil
}

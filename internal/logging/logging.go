// Package logging configures the application logger. The TUI owns the
// terminal, so all log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewFileLogger creates a leveled logger writing to the file at path,
// creating parent directories if needed. The returned closer releases
// the file handle and must be called at shutdown.
func NewFileLogger(path string) (*log.Logger, func() error, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		Prefix:          "todo",
	})

	return logger, f.Close, nil
}

// Discard returns a logger that drops everything, for use in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

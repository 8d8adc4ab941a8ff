package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/app"
	"github.com/nhle/todo/internal/logging"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
	"github.com/nhle/todo/internal/viewmodel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(1)
	}
}

// run wires config, logging, and the store together, holding the store
// handle for the process lifetime and releasing it on shutdown.
func run() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.NewFileLogger(cfg.Storage.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	dbDir := filepath.Dir(cfg.Storage.DatabasePath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dbDir, err)
	}

	s, err := store.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer s.Close()

	vm := viewmodel.New(s, logger)

	p := tea.NewProgram(app.New(vm), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "err", err)
		return err
	}

	logger.Info("shutting down")
	return nil
}

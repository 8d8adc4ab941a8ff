package model

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("loading missing config: %v", err)
	}

	if cfg.Storage.DatabasePath == "" {
		t.Error("expected a default database path")
	}
	if cfg.Storage.LogPath == "" {
		t.Error("expected a default log path")
	}
	if cfg.Display.Theme != "default" {
		t.Errorf("Theme = %q, want default", cfg.Display.Theme)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &AppConfig{
		Storage: StorageConfig{
			DatabasePath: "/tmp/custom/todo.db",
			LogPath:      "/tmp/custom/todo.log",
		},
		Display: DisplayConfig{Theme: "dark"},
	}

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if got.Storage.DatabasePath != want.Storage.DatabasePath {
		t.Errorf("DatabasePath = %q, want %q", got.Storage.DatabasePath, want.Storage.DatabasePath)
	}
	if got.Storage.LogPath != want.Storage.LogPath {
		t.Errorf("LogPath = %q, want %q", got.Storage.LogPath, want.Storage.LogPath)
	}
	if got.Display.Theme != want.Display.Theme {
		t.Errorf("Theme = %q, want %q", got.Display.Theme, want.Display.Theme)
	}
}

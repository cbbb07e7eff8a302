package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchDebounceMS != DefaultSearchDebounceMS {
		t.Errorf("SearchDebounceMS = %d, want %d", cfg.SearchDebounceMS, DefaultSearchDebounceMS)
	}
	if cfg.RefreshDebounce() != 500*time.Millisecond {
		t.Errorf("RefreshDebounce() = %v, want 500ms", cfg.RefreshDebounce())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
project = "/tmp/show.json"
search_debounce_ms = 200
refresh_debounce_ms = 1000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project != "/tmp/show.json" {
		t.Errorf("Project = %q", cfg.Project)
	}
	if cfg.SearchDebounce() != 200*time.Millisecond {
		t.Errorf("SearchDebounce() = %v", cfg.SearchDebounce())
	}
	if cfg.StateDB != DefaultStateDB {
		t.Errorf("StateDB = %q, want default kept", cfg.StateDB)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SOURCESCOUT_PROJECT", "/tmp/override.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project != "/tmp/override.json" {
		t.Errorf("Project = %q, want env override", cfg.Project)
	}
}

func TestLoadClampsBadDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("search_debounce_ms = -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchDebounceMS != DefaultSearchDebounceMS {
		t.Errorf("SearchDebounceMS = %d, want default", cfg.SearchDebounceMS)
	}
}

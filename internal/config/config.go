package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults match the debounce intervals the search dock was tuned with:
// short enough that typing feels live, long enough to fold event storms
// during project load into one refresh.
const (
	DefaultSearchDebounceMS  = 150
	DefaultRefreshDebounceMS = 500

	DefaultStateDB = "~/.local/state/sourcescout/state.db"
)

// Config is the on-disk configuration, read from a TOML file.
type Config struct {
	// Project is the path to the scene-collection JSON file to index.
	Project string `toml:"project"`

	// StateDB is where UI state (recent searches, last filters) persists.
	StateDB string `toml:"state_db"`

	SearchDebounceMS  int `toml:"search_debounce_ms"`
	RefreshDebounceMS int `toml:"refresh_debounce_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StateDB:           DefaultStateDB,
		SearchDebounceMS:  DefaultSearchDebounceMS,
		RefreshDebounceMS: DefaultRefreshDebounceMS,
	}
}

// Path returns the config file location: SOURCESCOUT_CONFIG if set,
// otherwise ~/.config/sourcescout/config.toml.
func Path() string {
	if env := os.Getenv("SOURCESCOUT_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "sourcescout", "config.toml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. The SOURCESCOUT_PROJECT env var overrides the project path
// either way.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv("SOURCESCOUT_PROJECT"); env != "" {
		cfg.Project = env
	}
	if cfg.SearchDebounceMS <= 0 {
		cfg.SearchDebounceMS = DefaultSearchDebounceMS
	}
	if cfg.RefreshDebounceMS <= 0 {
		cfg.RefreshDebounceMS = DefaultRefreshDebounceMS
	}

	return cfg, nil
}

// SearchDebounce is the pause after the last keystroke before querying.
func (c Config) SearchDebounce() time.Duration {
	return time.Duration(c.SearchDebounceMS) * time.Millisecond
}

// RefreshDebounce is the quiet period after the last graph mutation before
// the index rebuilds.
func (c Config) RefreshDebounce() time.Duration {
	return time.Duration(c.RefreshDebounceMS) * time.Millisecond
}

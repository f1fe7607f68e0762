// Package config loads the config.toml that maps hotkeys to device names.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"soundswitch/internal/resolver"
)

// ConfigFileName is looked up next to the executable first, then in the
// current working directory (the latter keeps `go run` working from the
// project root).
const ConfigFileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	// FuzzyMatch enables approximate device-name matching for every
	// resolution in the process. Defaults to false (exact matching).
	FuzzyMatch bool `toml:"fuzzy-match"`

	// FuzzyMatchThreshold is the exclusive score floor for fuzzy matches.
	// 0 accepts any positive match.
	FuzzyMatchThreshold float64 `toml:"fuzzy-match-threshold"`

	// LogFile redirects logging from stderr when set.
	LogFile string `toml:"log-file"`

	Hotkeys []HotkeyMapping `toml:"hotkeys"`
}

// HotkeyMapping binds one key combination to a target output device and,
// optionally, an input device switched in the same press.
type HotkeyMapping struct {
	Keys            string `toml:"keys"`
	DeviceName      string `toml:"device-name"`
	InputDeviceName string `toml:"input-device-name"` // empty = output only
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		FuzzyMatch:          false,
		FuzzyMatchThreshold: 0,
	}
}

// Mode returns the process-wide match mode this config selects.
func (c *Config) Mode() resolver.Mode {
	if c.FuzzyMatch {
		return resolver.Fuzzy
	}
	return resolver.Exact
}

// Locate finds config.toml next to the executable or in the working
// directory. A missing file is an error: without hotkey mappings the
// process has nothing to do.
func Locate() (string, error) {
	var searched []string

	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), ConfigFileName)
		if fileExists(p) {
			return p, nil
		}
		searched = append(searched, p)
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, ConfigFileName)
		if fileExists(p) {
			return p, nil
		}
		searched = append(searched, p)
	}

	return "", fmt.Errorf("config file %q not found (searched: %v); create one next to the executable", ConfigFileName, searched)
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	return config, nil
}

// Validate validates the configuration. Hotkey combo grammar and
// duplicate detection live in the hotkeys package; this checks the
// fields the parser cannot.
func (c *Config) Validate() error {
	if c.FuzzyMatchThreshold < 0 {
		return fmt.Errorf("fuzzy-match-threshold must be >= 0 (got %v)", c.FuzzyMatchThreshold)
	}

	for i, hk := range c.Hotkeys {
		if hk.Keys == "" {
			return fmt.Errorf("hotkeys[%d]: keys must not be empty", i)
		}
		if hk.DeviceName == "" {
			return fmt.Errorf("hotkeys[%d] (%s): device-name must not be empty", i, hk.Keys)
		}
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

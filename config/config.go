// Package config loads the optional stickpad configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/stickpad/stickpad"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the data directory.
const FileName = "config.yaml"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config is the application configuration. Every field has a default;
// a missing config file is not an error.
type Config struct {
	// Colors is the note background palette. The first entry is
	// assigned to new notes.
	Colors []string

	// AutosaveDelay is how long after the last edit a note is saved.
	AutosaveDelay time.Duration

	// Theme holds ANSI color indices for the TUI chrome.
	Theme stickpad.Theme
}

// file is the yaml shape of the config. Pointer fields distinguish
// "absent" from zero so partial configs layer over the defaults.
type file struct {
	Colors          []string        `yaml:"colors"`
	AutosaveSeconds *int            `yaml:"autosave_seconds"`
	Theme           *stickpad.Theme `yaml:"theme"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Colors:        stickpad.DefaultColors(),
		AutosaveDelay: 2 * time.Second,
		Theme:         stickpad.DefaultTheme(),
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file yields the defaults; a malformed file or an invalid
// palette is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(f.Colors) > 0 {
		for _, c := range f.Colors {
			if !hexColor.MatchString(c) {
				return Config{}, fmt.Errorf("palette entry %q: %w", c, stickpad.ErrInvalidColor)
			}
		}
		cfg.Colors = f.Colors
	}
	if f.AutosaveSeconds != nil && *f.AutosaveSeconds > 0 {
		cfg.AutosaveDelay = time.Duration(*f.AutosaveSeconds) * time.Second
	}
	if f.Theme != nil {
		cfg.Theme = *f.Theme
	}
	return cfg, nil
}

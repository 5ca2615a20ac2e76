// Package config provides YAML-based configuration loading for the game.
// Only presentation is configurable: key bindings, colors, window and
// terminal options, logging and the RNG seed.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
)

// Config is the full application configuration.
type Config struct {
	Keys     KeysConfig     `yaml:"keys"`
	Colors   ColorsConfig   `yaml:"colors"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Log      LogConfig      `yaml:"log"`
	Seed     int64          `yaml:"seed"`
}

// KeysConfig defines key bindings by name.
type KeysConfig struct {
	Jump []string `yaml:"jump"`
	Quit []string `yaml:"quit"`
}

// ColorsConfig names the flat color of each element.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Bird       string `yaml:"bird"`
	Pipe       string `yaml:"pipe"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // Window size relative to the 800x600 playfield
}

// TerminalConfig defines terminal rendering.
type TerminalConfig struct {
	Fill     string `yaml:"fill"`      // Single character used for filled cells
	ShowHelp bool   `yaml:"show_help"` // Key help line below the playfield
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr (discarded in the terminal UI)
}

// Palette resolves the configured color names.
func (c ColorsConfig) Palette() (background, bird, pipe core.Color, err error) {
	if background, err = core.ParseColor(c.Background); err != nil {
		return 0, 0, 0, fmt.Errorf("colors.background: %w", err)
	}
	if bird, err = core.ParseColor(c.Bird); err != nil {
		return 0, 0, 0, fmt.Errorf("colors.bird: %w", err)
	}
	if pipe, err = core.ParseColor(c.Pipe); err != nil {
		return 0, 0, 0, fmt.Errorf("colors.pipe: %w", err)
	}
	return background, bird, pipe, nil
}

// FillRune returns the terminal fill character.
func (t TerminalConfig) FillRune() rune {
	r, _ := utf8.DecodeRuneInString(t.Fill)
	return r
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error

	if len(c.Keys.Jump) == 0 {
		errs = append(errs, errors.New("keys.jump: at least one key is required"))
	}
	for _, k := range append(append([]string{}, c.Keys.Jump...), c.Keys.Quit...) {
		if k == "" {
			errs = append(errs, errors.New("keys: empty key name"))
			break
		}
	}
	if _, _, _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale: must be positive, got %v", c.Window.Scale))
	}
	if utf8.RuneCountInString(c.Terminal.Fill) != 1 {
		errs = append(errs, fmt.Errorf("terminal.fill: must be a single character, got %q", c.Terminal.Fill))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Package config loads the YAML settings of the game: tick cadence, seed,
// key bindings, colors and logging. The board itself is fixed and has no
// settings here.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the complete settings file.
type Config struct {
	Variant      string        `yaml:"variant"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Seed         int64         `yaml:"seed"`
	ShowGrid     bool          `yaml:"show_grid"`
	Log          LogConfig     `yaml:"log"`
	Keys         KeyConfig     `yaml:"keys"`
	Theme        ThemeConfig   `yaml:"theme"`
}

// LogConfig selects where log lines go and how verbose they are.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// KeyConfig lists the Bubble Tea key names bound to each action.
type KeyConfig struct {
	Up         []string `yaml:"up,flow"`
	Down       []string `yaml:"down,flow"`
	Left       []string `yaml:"left,flow"`
	Right      []string `yaml:"right,flow"`
	Pause      []string `yaml:"pause,flow"`
	Restart    []string `yaml:"restart,flow"`
	Quit       []string `yaml:"quit,flow"`
	Screenshot []string `yaml:"screenshot,flow"`
}

// ThemeConfig names the color of each drawn element.
type ThemeConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Apple  string `yaml:"apple"`
	Grid   string `yaml:"grid"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
}

// Default returns the built-in settings. It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		Variant:      "snake",
		TickInterval: core.DefaultTickInterval,
		Seed:         0,
		ShowGrid:     true,
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
		Keys: KeyConfig{
			Up:         []string{"up", "w", "k"},
			Down:       []string{"down", "s", "j"},
			Left:       []string{"left", "a", "h"},
			Right:      []string{"right", "d", "l"},
			Pause:      []string{"p", "esc"},
			Restart:    []string{"r"},
			Quit:       []string{"q", "ctrl+c"},
			Screenshot: []string{"ctrl+s"},
		},
		Theme: ThemeConfig{
			Head:   "bright_green",
			Body:   "green",
			Apple:  "red",
			Grid:   "gray",
			Border: "white",
			Text:   "bright_red",
		},
	}
}

// Validate reports the first problem found, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if c.Variant == "" {
		return fmt.Errorf("config: variant is empty: %w", ErrInvalid)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: tick_interval must be positive, got %s: %w", c.TickInterval, ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, ErrInvalid)
	}

	for name, keys := range c.Keys.byAction() {
		if len(keys) == 0 {
			return fmt.Errorf("config: keys.%s has no keys: %w", name, ErrInvalid)
		}
	}

	if _, err := c.Theme.Colors(); err != nil {
		return fmt.Errorf("config: theme: %v: %w", err, ErrInvalid)
	}
	return nil
}

func (k KeyConfig) byAction() map[string][]string {
	return map[string][]string{
		"up":         k.Up,
		"down":       k.Down,
		"left":       k.Left,
		"right":      k.Right,
		"pause":      k.Pause,
		"restart":    k.Restart,
		"quit":       k.Quit,
		"screenshot": k.Screenshot,
	}
}

// ThemeColors is a ThemeConfig with every name resolved.
type ThemeColors struct {
	Head, Body, Apple, Grid, Border, Text core.Color
}

// Colors resolves the color names.
func (t ThemeConfig) Colors() (ThemeColors, error) {
	var out ThemeColors
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{t.Head, &out.Head},
		{t.Body, &out.Body},
		{t.Apple, &out.Apple},
		{t.Grid, &out.Grid},
		{t.Border, &out.Border},
		{t.Text, &out.Text},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.name)
		if err != nil {
			return ThemeColors{}, err
		}
		*f.dst = c
	}
	return out, nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

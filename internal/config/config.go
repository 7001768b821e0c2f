// Package config provides YAML-based game configuration loading and
// environment overrides for the command line.
package config

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Display DisplayConfig `yaml:"display"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// DisplayConfig controls how the well is drawn.
type DisplayConfig struct {
	// CellWidth is the number of terminal columns per board column.
	CellWidth int `yaml:"cell_width"`
}

// GravityConfig controls how often the falling piece drops on its own.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the gravity interval as a duration.
func (g GravityConfig) Interval() time.Duration {
	return time.Duration(g.IntervalMS) * time.Millisecond
}

// ThemeConfig maps palette slots to hex colors.
// Piece slots are keyed by kind letter ("I", "J", ...); the rest by name
// ("empty", "border", "text", "dim", "highlight").
type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Palette map[string]string `yaml:"palette"`
}

// PaletteKeys lists every slot a palette may define.
var PaletteKeys = []string{
	"I", "J", "L", "O", "S", "T", "Z",
	"empty", "border", "text", "dim", "highlight",
}

// Validate reports the first invalid setting.
func (c TetrisConfig) Validate() error {
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS)
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 4 {
		return fmt.Errorf("display.cell_width must be between 1 and 4, got %d", c.Display.CellWidth)
	}
	for _, key := range PaletteKeys {
		value, ok := c.Theme.Palette[key]
		if !ok {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("theme.palette.%s: %q is not a hex color: %w", key, value, err)
		}
	}
	return nil
}

// withDefaults fills unset values from the built-in defaults.
func (c TetrisConfig) withDefaults() TetrisConfig {
	def := DefaultTetrisConfig()
	if c.Gravity.IntervalMS == 0 {
		c.Gravity.IntervalMS = def.Gravity.IntervalMS
	}
	if c.Display.CellWidth == 0 {
		c.Display.CellWidth = def.Display.CellWidth
	}
	if c.Theme.Name == "" {
		c.Theme.Name = def.Theme.Name
	}
	palette := make(map[string]string, len(def.Theme.Palette))
	for k, v := range def.Theme.Palette {
		palette[k] = v
	}
	for k, v := range c.Theme.Palette {
		palette[k] = v
	}
	c.Theme.Palette = palette
	return c
}

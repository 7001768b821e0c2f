package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			IntervalMS: 200,
		},
		Display: DisplayConfig{
			CellWidth: 2,
		},
		Theme: ThemeConfig{
			Name: "classic",
			Palette: map[string]string{
				"I":         "#0341AE",
				"J":         "#72CB3B",
				"L":         "#FFD500",
				"O":         "#FF971C",
				"S":         "#FF3213",
				"T":         "#800080",
				"Z":         "#FF7F00",
				"empty":     "#3A3A3A",
				"border":    "#8A8A8A",
				"text":      "#E4E4E4",
				"dim":       "#808080",
				"highlight": "#FFFF87",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}

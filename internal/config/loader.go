package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tetrisFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.termtris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// An explicit customPath that cannot be read, parsed or validated is an
// error. Files found on the search path are skipped when invalid.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readTetris(customPath)
		if err != nil {
			return DefaultTetrisConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(tetrisFile), filepath.Join("configs", tetrisFile)} {
		if path == "" {
			continue
		}
		if cfg, err := readTetris(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readTetris(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseTetris(data)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func parseTetris(data []byte) (TetrisConfig, error) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termtris", "configs", filename)
}

// DataDir returns ~/.termtris, or the current directory if home is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".termtris")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultTetrisConfigIsValid(t *testing.T) {
	cfg := DefaultTetrisConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200*time.Millisecond, cfg.Gravity.Interval())
	assert.Equal(t, 2, cfg.Display.CellWidth)
	for _, key := range PaletteKeys {
		assert.Contains(t, cfg.Theme.Palette, key)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseTetris(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tetris.yaml", `
gravity:
  interval_ms: 500
theme:
  palette:
    I: "#112233"
`)

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Gravity.IntervalMS)
	assert.Equal(t, 2, cfg.Display.CellWidth, "unset values come from defaults")
	assert.Equal(t, "#112233", cfg.Theme.Palette["I"])
	assert.Equal(t, "#72CB3B", cfg.Theme.Palette["J"])
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", writeFile(t, dir, "bad.yaml", "gravity: [1, 2")},
		{"negative gravity", writeFile(t, dir, "neg.yaml", "gravity:\n  interval_ms: -5\n")},
		{"wide cells", writeFile(t, dir, "wide.yaml", "display:\n  cell_width: 9\n")},
		{"bad color", writeFile(t, dir, "color.yaml", "theme:\n  palette:\n    T: purple\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadTetris(tt.path)
			require.Error(t, err)
			assert.Equal(t, DefaultTetrisConfig(), cfg)
		})
	}
}

func TestLoadTetrisSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	work := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded default.
	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)

	// Local configs directory.
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	writeFile(t, filepath.Join(work, "configs"), "tetris.yaml", "gravity:\n  interval_ms: 300\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Gravity.IntervalMS)

	// User directory wins over the local one.
	userDir := filepath.Join(home, ".termtris", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	writeFile(t, userDir, "tetris.yaml", "gravity:\n  interval_ms: 400\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Gravity.IntervalMS)

	// An invalid user file is skipped.
	writeFile(t, userDir, "tetris.yaml", "gravity:\n  interval_ms: 0\ndisplay:\n  cell_width: 99\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Gravity.IntervalMS)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TERMTRIS_FPS", "15")
	t.Setenv("TERMTRIS_SEED", "42")
	t.Setenv("TERMTRIS_DB", "/tmp/h.db")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 15, e.FPS)
	assert.Equal(t, int64(42), e.Seed)
	assert.Equal(t, "/tmp/h.db", e.DB)
	assert.Equal(t, "info", e.LogLevel)
	assert.Equal(t, ":23234", e.SSHAddr)
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("TERMTRIS_FPS", "fast")
	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

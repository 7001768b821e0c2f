package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorHighlight)
	s.FillRect(core.NewRect(0, 1, 2, 1), core.ColorPieceI)

	out := RenderScreen(asciiRenderer(), s, DefaultTheme())
	assert.Equal(t, "abcd  \n      ", out)
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.FillRect(core.NewRect(0, 0, 2, 1), core.ColorPieceT)

	out := RenderScreen(trueColorRenderer(), s, DefaultTheme())
	// #800080 as a 24-bit background
	assert.Contains(t, out, "48;2;128;0;128")
	assert.True(t, bytes.HasSuffix([]byte(out), []byte("  ")), "uncolored cells are written as is")
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.FillRect(core.NewRect(0, 0, 8, 1), core.ColorPieceS)

	out := RenderScreen(trueColorRenderer(), s, DefaultTheme())
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("48;2;255;50;19")), "one escape for the whole run")
}

func TestNewThemeFromConfig(t *testing.T) {
	theme := NewTheme(config.ThemeConfig{
		Name: "custom",
		Palette: map[string]string{
			"I":       "#010203",
			"unknown": "#FFFFFF",
		},
	})
	assert.Equal(t, "custom", theme.Name)
	assert.True(t, theme.Has(core.ColorPieceI))
	assert.Equal(t, lipgloss.Color("#010203"), theme.Color(core.ColorPieceI))
	assert.False(t, theme.Has(core.ColorPieceJ))

	def := DefaultTheme()
	for _, c := range []core.Color{
		core.ColorPieceI, core.ColorPieceJ, core.ColorPieceL, core.ColorPieceO,
		core.ColorPieceS, core.ColorPieceT, core.ColorPieceZ, core.ColorEmpty,
	} {
		assert.True(t, def.Has(c), c.String())
	}
}

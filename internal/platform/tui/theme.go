package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// paletteSlots maps config palette keys to screen colors.
var paletteSlots = map[string]core.Color{
	"I":         core.ColorPieceI,
	"J":         core.ColorPieceJ,
	"L":         core.ColorPieceL,
	"O":         core.ColorPieceO,
	"S":         core.ColorPieceS,
	"T":         core.ColorPieceT,
	"Z":         core.ColorPieceZ,
	"empty":     core.ColorEmpty,
	"border":    core.ColorBorder,
	"text":      core.ColorText,
	"dim":       core.ColorDim,
	"highlight": core.ColorHighlight,
}

// Theme maps screen colors to terminal colors and holds the styles used
// outside the game screen.
type Theme struct {
	Name   string
	colors map[core.Color]lipgloss.Color

	// Non-game screens
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
}

// NewTheme builds a theme from a palette of slot name to hex color.
// Unknown slots are ignored; missing slots render with the terminal default.
func NewTheme(cfg config.ThemeConfig) Theme {
	t := Theme{
		Name:   cfg.Name,
		colors: make(map[core.Color]lipgloss.Color, len(paletteSlots)),
	}
	for slot, hex := range cfg.Palette {
		if c, ok := paletteSlots[slot]; ok {
			t.colors[c] = lipgloss.Color(hex)
		}
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Color(core.ColorHighlight)).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(t.Color(core.ColorDim))
	t.Border = lipgloss.NewStyle().Foreground(t.Color(core.ColorBorder))
	t.Selected = lipgloss.NewStyle().
		Foreground(t.Color(core.ColorHighlight)).
		Background(t.Color(core.ColorPieceT)).
		Bold(false)
	return t
}

// DefaultTheme returns the built-in classic palette.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultTetrisConfig().Theme)
}

// Color returns the terminal color for c, or the empty color (terminal
// default) when the palette does not define it.
func (t Theme) Color(c core.Color) lipgloss.Color {
	return t.colors[c]
}

// Has reports whether the palette defines c.
func (t Theme) Has(c core.Color) bool {
	_, ok := t.colors[c]
	return ok
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtris/internal/core"
)

// cellColors is the style key of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses the lipgloss default renderer.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen, theme Theme) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cellColors]lipgloss.Style)
	styleFor := func(k cellColors) lipgloss.Style {
		if st, ok := styles[k]; ok {
			return st
		}
		st := r.NewStyle()
		if k.fg != core.ColorDefault && theme.Has(k.fg) {
			st = st.Foreground(theme.Color(k.fg))
		}
		if k.bg != core.ColorDefault && theme.Has(k.bg) {
			st = st.Background(theme.Color(k.bg))
		}
		styles[k] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellColors{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellColors{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(key).Render(run.String()))
		}
	}
	return sb.String()
}

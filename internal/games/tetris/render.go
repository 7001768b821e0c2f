package tetris

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris/engine"
)

// Layout constants, in terminal cells.
const (
	hudWidth = 20
	hudGap   = 2
)

// layoutSize returns the smallest screen that fits the well and the HUD.
func (g *Game) layoutSize() (int, int) {
	w, h := g.wellSize()
	return w + hudGap + hudWidth, h
}

// wellSize returns the size of the bordered well.
func (g *Game) wellSize() (int, int) {
	return engine.Cols*g.cfg.Display.CellWidth + 2, engine.VisibleRows + 2
}

// Resize adapts the game to a new screen size without restarting it.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Render draws the well, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	totalW, totalH := g.layoutSize()
	area := core.CenteredRect(dst.Width(), dst.Height(), totalW, totalH)
	wellW, wellH := g.wellSize()
	well := core.NewRect(area.X, area.Y, wellW, wellH)
	hud := core.NewRect(well.Right()+hudGap, area.Y, hudWidth, wellH)

	g.renderWell(dst, well)
	g.renderHUD(dst, hud)
	g.renderOverlay(dst, well)
}

// renderWell draws the border and the visible rows. Every board column spans
// CellWidth terminal cells painted in the piece color.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorBorder)

	cw := g.cfg.Display.CellWidth
	grid := g.board.Visible()
	for row := 0; row < engine.VisibleRows; row++ {
		y := well.Y + 1 + row
		for col := 0; col < engine.Cols; col++ {
			bg := core.ColorEmpty
			if c := grid[row][col]; !c.IsEmpty() {
				bg = c.Color
			}
			dst.FillRect(core.NewRect(well.X+1+col*cw, y, cw, 1), bg)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, hud core.Rect) {
	stats := g.board.Stats()
	y := hud.Y

	dst.DrawTextColored(hud.X, y, "T E T R I S", core.ColorHighlight)
	y += 2
	dst.DrawTextColored(hud.X, y, fmt.Sprintf("Pieces  %d", stats.Pieces), core.ColorText)
	y++
	dst.DrawTextColored(hud.X, y, fmt.Sprintf("Rows    %d", stats.RowsCleared), core.ColorText)
	y++
	dst.DrawTextColored(hud.X, y, fmt.Sprintf("Gravity %s", g.board.Gravity().Interval()), core.ColorDim)
	y += 2

	if p, ok := g.board.Active(); ok {
		dst.DrawTextColored(hud.X, y, fmt.Sprintf("Piece   %s", p.Kind), core.ColorDim)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, well core.Rect) {
	var lines []string
	switch {
	case g.gameOver:
		lines = []string{"GAME OVER", "", "r  restart", "q  quit"}
	case g.paused:
		lines = []string{"PAUSED", "", "p  resume"}
	default:
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	cx, cy := well.Center()
	box := core.NewRect(
		core.Clamp(cx-boxW/2, 0, core.Max(0, dst.Width()-boxW)),
		core.Clamp(cy-boxH/2, 0, core.Max(0, dst.Height()-boxH)),
		boxW, boxH,
	)
	dst.FillRect(box, core.ColorDefault)
	dst.DrawBox(box, core.ColorHighlight)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, core.ColorText)
	}
}

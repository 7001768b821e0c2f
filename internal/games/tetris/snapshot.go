package tetris

import "github.com/vovakirdan/termtris/internal/games/tetris/engine"

// Snapshot captures the observable game state for determinism checks.
// Uses primitive types only.
type Snapshot struct {
	Frame       uint64
	GameOver    bool
	Paused      bool
	Pieces      int
	Locked      int
	RowsCleared int

	HasActive bool
	Kind      int
	Row       int
	Col       int
	Rotation  int

	// Visible grid, row-major. Each cell is state<<8 | color.
	Grid []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	stats := g.board.Stats()
	snap := Snapshot{
		Frame:       g.frame,
		GameOver:    g.gameOver,
		Paused:      g.paused,
		Pieces:      stats.Pieces,
		Locked:      stats.Locked,
		RowsCleared: stats.RowsCleared,
		Grid:        make([]int, 0, engine.VisibleRows*engine.Cols),
	}

	if p, ok := g.board.Active(); ok {
		snap.HasActive = true
		snap.Kind = int(p.Kind)
		snap.Row = p.Pos.Row
		snap.Col = p.Pos.Col
		snap.Rotation = int(p.Rotation)
	}

	grid := g.board.Visible()
	for row := 0; row < engine.VisibleRows; row++ {
		for col := 0; col < engine.Cols; col++ {
			c := grid[row][col]
			snap.Grid = append(snap.Grid, int(c.State)<<8|int(c.Color))
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Pieces)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Locked)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RowsCleared) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.HasActive)
	h = h*31 + uint64(snap.Kind)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Row)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Col)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rotation) //#nosec G115 -- hash computation

	for _, v := range snap.Grid {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Package engine implements the falling-block board: the piece shape table,
// collision checks, movement and rotation, locking with line clears, and the
// gravity-driven tick state machine.
//
// A Board is not safe for concurrent use. The presentation layer owns it and
// is its only mutator.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Grid dimensions. Only the bottom VisibleRows rows are drawn; the rows above
// hold spawning pieces.
const (
	Rows        = 40
	VisibleRows = 20
	Cols        = 10
)

// MoveDir is a one-cell translation requested by the player.
type MoveDir uint8

const (
	Left MoveDir = iota
	Right
	Down
)

// RotateDir is a one-step rotation requested by the player.
type RotateDir uint8

const (
	Clockwise RotateDir = iota
	Counterclockwise
)

// Stats counts what happened on a board since it was created.
type Stats struct {
	Pieces      int // pieces spawned
	Locked      int // pieces frozen into the stack
	RowsCleared int
}

// Board is the game grid plus the falling piece and gravity clock.
type Board struct {
	cells     [Rows][Cols]Cell
	active    Piece
	hasActive bool

	gravity *GravityClock
	rng     *rand.Rand
	stats   Stats
}

// NewBoard returns an empty board. A nil rng is seeded from the current time;
// a nil clock means the system clock; a non-positive interval means
// DefaultGravity.
func NewBoard(rng *rand.Rand, clock Clock, interval time.Duration) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		gravity: NewGravityClock(clock, interval),
		rng:     rng,
	}
}

// Cell returns the cell at (row, col). Out-of-range positions read as Empty.
func (b *Board) Cell(row, col int) Cell {
	if !inBounds(row, col) {
		return Cell{}
	}
	return b.cells[row][col]
}

// Visible returns a copy of the bottom VisibleRows rows, top row first.
func (b *Board) Visible() [VisibleRows][Cols]Cell {
	var out [VisibleRows][Cols]Cell
	copy(out[:], b.cells[Rows-VisibleRows:])
	return out
}

// Active returns the falling piece, if any.
func (b *Board) Active() (Piece, bool) {
	return b.active, b.hasActive
}

// Stats returns the running counters.
func (b *Board) Stats() Stats {
	return b.stats
}

// Gravity returns the board's gravity clock.
func (b *Board) Gravity() *GravityClock {
	return b.gravity
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// CanPlace reports whether every occupied cell of p lies inside the grid and
// off any Filled cell. Active cells never block, so the falling piece can be
// tested against its own footprint. It never mutates the board.
func (b *Board) CanPlace(p Piece) bool {
	shape := p.Shape()
	for r := 0; r < shape.Size; r++ {
		for c := 0; c < shape.Size; c++ {
			if !shape.Cells[r][c] {
				continue
			}
			row, col := p.Pos.Row+r, p.Pos.Col+c
			if !inBounds(row, col) {
				return false
			}
			if b.cells[row][col].IsFilled() {
				return false
			}
		}
	}
	return true
}

// Place erases the previous falling piece, draws p as Active cells and makes
// it the falling piece. The caller must have checked CanPlace; writing onto a
// non-empty cell panics because the grid would otherwise be corrupted.
func (b *Board) Place(p Piece) {
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c].IsActive() {
				b.cells[r][c] = Cell{}
			}
		}
	}

	color := p.Kind.Color()
	for _, pos := range p.Cells() {
		if !inBounds(pos.Row, pos.Col) {
			panic(fmt.Sprintf("engine: place %s outside the grid at (%d, %d)", p, pos.Row, pos.Col))
		}
		cell := &b.cells[pos.Row][pos.Col]
		if !cell.IsEmpty() {
			panic(fmt.Sprintf("engine: place %s onto %s cell at (%d, %d)", p, cell.State, pos.Row, pos.Col))
		}
		*cell = ActiveCell(color)
	}

	b.active = p
	b.hasActive = true
}

// Move shifts the falling piece one cell. It returns false, leaving the board
// untouched, when there is no falling piece or the target is blocked.
func (b *Board) Move(dir MoveDir) bool {
	if !b.hasActive {
		return false
	}

	var next Piece
	switch dir {
	case Left:
		next = b.active.Shifted(0, -1)
	case Right:
		next = b.active.Shifted(0, 1)
	case Down:
		next = b.active.Shifted(1, 0)
	default:
		return false
	}
	return b.commit(next)
}

// Rotate turns the falling piece one step around its fixed anchor.
// There is no wall kick: a blocked rotation is rejected.
func (b *Board) Rotate(dir RotateDir) bool {
	if !b.hasActive {
		return false
	}
	return b.commit(b.active.Rotated(dir))
}

func (b *Board) commit(next Piece) bool {
	if !b.CanPlace(next) {
		return false
	}
	b.Place(next)
	return true
}

// FreezeAndClear settles every Active cell into a Filled one, then removes all
// rows that are completely Filled. Surviving rows drop down as whole rows in
// their original order and the rows freed at the top become Empty.
// It returns the number of rows removed.
func (b *Board) FreezeAndClear() int {
	for r := range b.cells {
		for c := range b.cells[r] {
			if cell := b.cells[r][c]; cell.IsActive() {
				b.cells[r][c] = FilledCell(cell.Color)
			}
		}
	}

	var complete [Rows]bool
	for r := range b.cells {
		complete[r] = rowComplete(b.cells[r])
	}

	dst := Rows - 1
	for src := Rows - 1; src >= 0; src-- {
		if complete[src] {
			continue
		}
		if src != dst {
			b.cells[dst] = b.cells[src]
		}
		dst--
	}

	cleared := dst + 1
	for r := dst; r >= 0; r-- {
		b.cells[r] = [Cols]Cell{}
	}

	if cleared > 0 {
		log.Debug("rows cleared", "count", cleared)
	}
	return cleared
}

func rowComplete(row [Cols]Cell) bool {
	for _, cell := range row {
		if !cell.IsFilled() {
			return false
		}
	}
	return true
}

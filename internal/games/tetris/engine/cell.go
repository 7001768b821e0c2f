package engine

import "github.com/vovakirdan/termtris/internal/core"

// CellState tells what occupies a board position.
type CellState uint8

const (
	// Empty is the zero value so a fresh grid needs no initialization.
	Empty CellState = iota
	// Filled marks a settled block. It only moves when a row clear shifts it.
	Filled
	// Active marks a block of the currently falling piece.
	Active
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Cell is one board position. Color is only meaningful for Filled and Active.
type Cell struct {
	State CellState
	Color core.Color
}

// FilledCell returns a settled cell with the given color.
func FilledCell(color core.Color) Cell {
	return Cell{State: Filled, Color: color}
}

// ActiveCell returns a falling-piece cell with the given color.
func ActiveCell(color core.Color) Cell {
	return Cell{State: Active, Color: color}
}

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.State == Empty
}

// IsFilled reports whether the cell holds a settled block.
func (c Cell) IsFilled() bool {
	return c.State == Filled
}

// IsActive reports whether the cell belongs to the falling piece.
func (c Cell) IsActive() bool {
	return c.State == Active
}

package engine

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
)

// Kind is one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	kindCount = 7
)

// Kinds lists every kind in table order.
var Kinds = [kindCount]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// String returns the one-letter name of the kind.
func (k Kind) String() string {
	if int(k) >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return "IJLOSTZ"[k : k+1]
}

// Color returns the palette slot every block of this kind is drawn with.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorPieceI
	case KindJ:
		return core.ColorPieceJ
	case KindL:
		return core.ColorPieceL
	case KindO:
		return core.ColorPieceO
	case KindS:
		return core.ColorPieceS
	case KindT:
		return core.ColorPieceT
	case KindZ:
		return core.ColorPieceZ
	default:
		return core.ColorDefault
	}
}

// StartPosition returns the spawn anchor, just above the visible window.
func (k Kind) StartPosition() Pos {
	return Pos{Row: 20, Col: 4}
}

// Rotation is one of four orientations in a fixed cycle.
type Rotation uint8

const (
	R0 Rotation = iota
	R1
	R2
	R3

	rotationCount = 4
)

// Next returns the orientation one clockwise step away.
func (r Rotation) Next() Rotation {
	return (r + 1) % rotationCount
}

// Prev returns the orientation one counterclockwise step away.
func (r Rotation) Prev() Rotation {
	return (r + rotationCount - 1) % rotationCount
}

// Rotate steps the orientation in the given direction.
func (r Rotation) Rotate(dir RotateDir) Rotation {
	if dir == Clockwise {
		return r.Next()
	}
	return r.Prev()
}

// String returns "R0".."R3".
func (r Rotation) String() string {
	return fmt.Sprintf("R%d", uint8(r))
}

// Pos is a board coordinate. Row 0 is the top of the grid.
type Pos struct {
	Row, Col int
}

// Add returns the sum of two positions.
func (p Pos) Add(o Pos) Pos {
	return Pos{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Piece is a tetromino placed on the board.
// Pos is the top-left corner of its bitmap, which may lie outside the grid
// as long as every occupied sub-cell does not.
type Piece struct {
	Kind     Kind
	Pos      Pos
	Rotation Rotation
}

// Spawn returns a piece of the given kind at its start position in R0.
func Spawn(k Kind) Piece {
	return Piece{Kind: k, Pos: k.StartPosition(), Rotation: R0}
}

// Shifted returns a copy of the piece moved by the given row and column offsets.
func (p Piece) Shifted(dRow, dCol int) Piece {
	p.Pos = p.Pos.Add(Pos{Row: dRow, Col: dCol})
	return p
}

// Rotated returns a copy of the piece turned one step in the given direction.
func (p Piece) Rotated(dir RotateDir) Piece {
	p.Rotation = p.Rotation.Rotate(dir)
	return p
}

// Shape returns the piece's current bitmap.
func (p Piece) Shape() Bitmap {
	return Shape(p.Kind, p.Rotation)
}

// Cells returns the absolute board positions the piece occupies.
func (p Piece) Cells() []Pos {
	offsets := p.Shape().Occupied()
	cells := make([]Pos, len(offsets))
	for i, off := range offsets {
		cells[i] = p.Pos.Add(off)
	}
	return cells
}

// String formats the piece for logs.
func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)/%s", p.Kind, p.Pos.Row, p.Pos.Col, p.Rotation)
}

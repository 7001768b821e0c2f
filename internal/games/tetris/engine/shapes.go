package engine

import "fmt"

// Bitmap is a square occupancy grid of size 3 or 4.
// Only the top-left Size×Size corner of Cells is used.
type Bitmap struct {
	Size  int
	Cells [4][4]bool
}

// At reports whether the sub-cell at (row, col) is occupied.
func (b Bitmap) At(row, col int) bool {
	if row < 0 || row >= b.Size || col < 0 || col >= b.Size {
		return false
	}
	return b.Cells[row][col]
}

// Occupied returns the offsets of every occupied sub-cell in row-major order.
func (b Bitmap) Occupied() []Pos {
	out := make([]Pos, 0, 4)
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] {
				out = append(out, Pos{Row: r, Col: c})
			}
		}
	}
	return out
}

// bitmap parses rows of 'X' (occupied) and '.' (empty).
func bitmap(rows ...string) Bitmap {
	b := Bitmap{Size: len(rows)}
	if b.Size < 3 || b.Size > 4 {
		panic(fmt.Sprintf("engine: bitmap must have 3 or 4 rows, got %d", b.Size))
	}
	for r, row := range rows {
		if len(row) != b.Size {
			panic(fmt.Sprintf("engine: bitmap row %q is not %d wide", row, b.Size))
		}
		for c, ch := range row {
			switch ch {
			case 'X':
				b.Cells[r][c] = true
			case '.':
			default:
				panic(fmt.Sprintf("engine: bad bitmap character %q", ch))
			}
		}
	}
	return b
}

// Shape returns the bitmap for a kind in a given rotation.
func Shape(k Kind, r Rotation) Bitmap {
	return shapes[k][r%rotationCount]
}

// shapes holds the Super Rotation System layouts, indexed by kind then rotation.
// I and O keep their 4×4 padding so every kind spawns aligned at the same anchor.
var shapes = [kindCount][rotationCount]Bitmap{
	KindI: {
		bitmap(
			"....",
			"XXXX",
			"....",
			"....",
		),
		bitmap(
			"..X.",
			"..X.",
			"..X.",
			"..X.",
		),
		bitmap(
			"....",
			"....",
			"XXXX",
			"....",
		),
		bitmap(
			".X..",
			".X..",
			".X..",
			".X..",
		),
	},
	KindJ: {
		bitmap(
			"X..",
			"XXX",
			"...",
		),
		bitmap(
			".XX",
			".X.",
			".X.",
		),
		bitmap(
			"...",
			"XXX",
			"..X",
		),
		bitmap(
			".X.",
			".X.",
			"XX.",
		),
	},
	KindL: {
		bitmap(
			"..X",
			"XXX",
			"...",
		),
		bitmap(
			".X.",
			".X.",
			".XX",
		),
		bitmap(
			"...",
			"XXX",
			"X..",
		),
		bitmap(
			"XX.",
			".X.",
			".X.",
		),
	},
	KindO: {
		oBitmap,
		oBitmap,
		oBitmap,
		oBitmap,
	},
	KindS: {
		bitmap(
			".XX",
			"XX.",
			"...",
		),
		bitmap(
			".X.",
			".XX",
			"..X",
		),
		bitmap(
			"...",
			".XX",
			"XX.",
		),
		bitmap(
			"X..",
			"XX.",
			".X.",
		),
	},
	KindT: {
		bitmap(
			".X.",
			"XXX",
			"...",
		),
		bitmap(
			".X.",
			".XX",
			".X.",
		),
		bitmap(
			"...",
			"XXX",
			".X.",
		),
		bitmap(
			".X.",
			"XX.",
			".X.",
		),
	},
	KindZ: {
		bitmap(
			"XX.",
			".XX",
			"...",
		),
		bitmap(
			"..X",
			".XX",
			".X.",
		),
		bitmap(
			"...",
			"XX.",
			".XX",
		),
		bitmap(
			".X.",
			"XX.",
			"X..",
		),
	},
}

var oBitmap = bitmap(
	".XX.",
	".XX.",
	"....",
	"....",
)

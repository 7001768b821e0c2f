package core

// Color names a palette slot for a screen cell.
// The platform layer resolves slots to concrete terminal colors through its theme.
type Color uint8

// Palette slots. ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorBorder
	ColorText
	ColorDim
	ColorHighlight
	ColorEmpty

	// One slot per tetromino kind.
	ColorPieceI
	ColorPieceJ
	ColorPieceL
	ColorPieceO
	ColorPieceS
	ColorPieceT
	ColorPieceZ
)

// String returns the palette slot name used in theme configuration.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBorder:
		return "border"
	case ColorText:
		return "text"
	case ColorDim:
		return "dim"
	case ColorHighlight:
		return "highlight"
	case ColorEmpty:
		return "empty"
	case ColorPieceI:
		return "I"
	case ColorPieceJ:
		return "J"
	case ColorPieceL:
		return "L"
	case ColorPieceO:
		return "O"
	case ColorPieceS:
		return "S"
	case ColorPieceT:
		return "T"
	case ColorPieceZ:
		return "Z"
	default:
		return "unknown"
	}
}

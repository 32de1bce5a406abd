package game

import (
	"errors"
	"fmt"
)

// BoardSize is the edge length of the square board.
const BoardSize = 7

var ErrInvalidSquare = errors.New("invalid square notation")

// Coord is a square on the board. Row 0 is rank 1 (Tangerine's home rank),
// Col 0 is file a. Both indices are always in [0, BoardSize) for any Coord
// produced by ParseSquare.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ParseSquare decodes algebraic notation ("a1".."g7") into a Coord.
func ParseSquare(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	c := Coord{
		Row: int(s[1] - '1'),
		Col: int(s[0] - 'a'),
	}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return c, nil
}

// String renders the coordinate back to algebraic notation. Inverse of
// ParseSquare for in-bounds coordinates.
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+byte(c.Col), c.Row+1)
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// DeltaTo returns the signed row and column offsets from c to other.
func (c Coord) DeltaTo(other Coord) (rowDelta, colDelta int) {
	return other.Row - c.Row, other.Col - c.Col
}

package game

import "strings"

// Board is the 7x7 grid. It enforces the one-piece-per-square invariant and
// nothing else; legality checking lives in the validator, which Board trusts
// to have run first.
type Board struct {
	cells [BoardSize][BoardSize]*Piece
}

func NewBoard() *Board {
	return &Board{}
}

// homeOrder is the classic starting rank, files a through g. Each side gets
// the full row on its home rank, mirror-symmetric across the board center:
// Tangerine on rank 1, Amethyst on rank 7, Cuttlefish on the d file.
var homeOrder = [BoardSize]PieceType{
	Chinchilla, Wombat, Emu, Cuttlefish, Emu, Wombat, Chinchilla,
}

// NewStartingBoard returns a board with both sides' pieces on their home
// ranks.
func NewStartingBoard() *Board {
	b := NewBoard()
	for col, t := range homeOrder {
		b.Place(Coord{Row: 0, Col: col}, Piece{Type: t, Owner: Tangerine})
		b.Place(Coord{Row: BoardSize - 1, Col: col}, Piece{Type: t, Owner: Amethyst})
	}
	return b
}

// PieceAt returns the occupant of c, or nil for empty or out-of-bounds
// squares.
func (b *Board) PieceAt(c Coord) *Piece {
	if !c.InBounds() {
		return nil
	}
	return b.cells[c.Row][c.Col]
}

func (b *Board) Place(c Coord, p Piece) {
	if !c.InBounds() {
		return
	}
	b.cells[c.Row][c.Col] = &p
}

func (b *Board) Remove(c Coord) {
	if !c.InBounds() {
		return
	}
	b.cells[c.Row][c.Col] = nil
}

// Move relocates the occupant of from to to, overwriting any occupant of to.
// Overwriting is how capture is realized; callers validate first.
func (b *Board) Move(from, to Coord) {
	if !from.InBounds() || !to.InBounds() {
		return
	}
	b.cells[to.Row][to.Col] = b.cells[from.Row][from.Col]
	b.cells[from.Row][from.Col] = nil
}

func (b *Board) IsOccupiedBy(c Coord, p Player) bool {
	occupant := b.PieceAt(c)
	return occupant != nil && occupant.Owner == p
}

// Render returns a fixed-width text diagram of the position, ranks 7 down
// to 1 with a file-letter footer.
func (b *Board) Render() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteByte('1' + byte(row))
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			if pc := b.cells[row][col]; pc != nil {
				sb.WriteByte(pc.Glyph())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g\n")
	return sb.String()
}

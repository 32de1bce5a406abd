package game

import "errors"

// Reasons a move request is rejected. The Game's boolean MakeMove contract
// collapses all of these to false; they exist for diagnostics and for the
// HTTP layer's error responses.
var (
	ErrOutOfBounds      = errors.New("square off the board or identical to origin")
	ErrNoOwnedPiece     = errors.New("no piece of the moving player on the origin square")
	ErrBadGeometry      = errors.New("piece cannot reach the destination")
	ErrBlocked          = errors.New("path to the destination is blocked")
	ErrFriendlyOccupied = errors.New("destination holds a friendly piece")
)

// ValidateMove decides whether mover may move the piece on from to to. It
// never mutates the board. On success it reports whether the move is a
// primary or secondary move; the caller derives capture by inspecting the
// destination.
func ValidateMove(b *Board, mover Player, from, to Coord) (MoveKind, error) {
	if !from.InBounds() || !to.InBounds() || from == to {
		return "", ErrOutOfBounds
	}

	pc := b.PieceAt(from)
	if pc == nil || pc.Owner != mover {
		return "", ErrNoOwnedPiece
	}

	rowDelta, colDelta := from.DeltaTo(to)
	kind, ok := pc.Type.ClassifyDelta(rowDelta, colDelta)
	if !ok {
		return "", ErrBadGeometry
	}

	// Sliding primaries require an empty straight path between origin and
	// destination. Jumping primaries ignore intermediate occupancy, and
	// secondary moves have no intermediate squares at distance 1.
	if kind == PrimaryMove && pc.Type.Profile().Mode == Sliding {
		if !pathClear(b, from, to) {
			return "", ErrBlocked
		}
	}

	// The destination may be empty or hold an opposing piece (capture),
	// never the mover's own.
	if b.IsOccupiedBy(to, mover) {
		return "", ErrFriendlyOccupied
	}

	return kind, nil
}

// pathClear reports whether every square strictly between from and to along
// the straight line is empty. from and to must share a rank, file or
// diagonal.
func pathClear(b *Board, from, to Coord) bool {
	rowDelta, colDelta := from.DeltaTo(to)
	stepRow, stepCol := sign(rowDelta), sign(colDelta)

	cur := Coord{Row: from.Row + stepRow, Col: from.Col + stepCol}
	for cur != to {
		if b.PieceAt(cur) != nil {
			return false
		}
		cur.Row += stepRow
		cur.Col += stepCol
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

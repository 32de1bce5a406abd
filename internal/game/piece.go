package game

// Player identifies one of the two sides. Tangerine moves first.
type Player string

const (
	Tangerine Player = "TANGERINE"
	Amethyst  Player = "AMETHYST"
)

func (p Player) Opponent() Player {
	if p == Tangerine {
		return Amethyst
	}
	return Tangerine
}

// PieceType is the closed set of piece identities.
type PieceType int

const (
	Chinchilla PieceType = iota
	Wombat
	Emu
	Cuttlefish
)

func (t PieceType) String() string {
	switch t {
	case Chinchilla:
		return "chinchilla"
	case Wombat:
		return "wombat"
	case Emu:
		return "emu"
	case Cuttlefish:
		return "cuttlefish"
	}
	return "unknown"
}

// Axis of a piece's primary movement.
type Axis int

const (
	Orthogonal Axis = iota
	Diagonal
)

// Mode distinguishes sliding primaries (any distance up to the maximum,
// blocked by occupied intermediate squares) from jumping primaries (exactly
// the fixed distance, intermediate occupancy ignored).
type Mode int

const (
	Sliding Mode = iota
	Jumping
)

// Profile is a piece type's primary movement. Every piece additionally
// steps exactly one square on the axis perpendicular to its primary axis.
type Profile struct {
	Axis     Axis
	Distance int
	Mode     Mode
}

var profiles = [...]Profile{
	Chinchilla: {Axis: Diagonal, Distance: 1, Mode: Sliding},
	Wombat:     {Axis: Orthogonal, Distance: 4, Mode: Jumping},
	Emu:        {Axis: Orthogonal, Distance: 3, Mode: Sliding},
	Cuttlefish: {Axis: Diagonal, Distance: 2, Mode: Jumping},
}

func (t PieceType) Profile() Profile {
	return profiles[t]
}

// MoveKind classifies a geometrically possible move.
type MoveKind string

const (
	// PrimaryMove is movement along the piece type's primary axis.
	PrimaryMove MoveKind = "primary"
	// SecondaryMove is the universal one-square step on the perpendicular axis.
	SecondaryMove MoveKind = "secondary"
)

// ClassifyDelta decides whether the given offsets describe a primary move, a
// secondary move, or no legal geometry for this piece type. It does not look
// at the board; blocking and destination occupancy are the validator's job.
func (t PieceType) ClassifyDelta(rowDelta, colDelta int) (MoveKind, bool) {
	if rowDelta == 0 && colDelta == 0 {
		return "", false
	}

	ar, ac := abs(rowDelta), abs(colDelta)
	var axis Axis
	var magnitude int
	switch {
	case ar == ac:
		axis = Diagonal
		magnitude = ar
	case ar == 0 || ac == 0:
		axis = Orthogonal
		magnitude = ar + ac
	default:
		return "", false
	}

	p := t.Profile()
	if axis == p.Axis {
		switch p.Mode {
		case Sliding:
			if magnitude <= p.Distance {
				return PrimaryMove, true
			}
		case Jumping:
			if magnitude == p.Distance {
				return PrimaryMove, true
			}
		}
		return "", false
	}

	// Perpendicular axis: the shared one-square step.
	if magnitude == 1 {
		return SecondaryMove, true
	}
	return "", false
}

// Piece is an owned piece on the board. Immutable; captures remove it.
type Piece struct {
	Type  PieceType `json:"type"`
	Owner Player    `json:"owner"`
}

// Glyph is the piece's board-diagram letter: C, W, E or U, lower-cased for
// Amethyst.
func (p Piece) Glyph() byte {
	var g byte
	switch p.Type {
	case Chinchilla:
		g = 'C'
	case Wombat:
		g = 'W'
	case Emu:
		g = 'E'
	case Cuttlefish:
		g = 'U'
	default:
		g = '?'
	}
	if p.Owner == Amethyst {
		g += 'a' - 'A'
	}
	return g
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package chess

// Direction is a movement vector in ranks and files.
type Direction struct {
	DRank int
	DFile int
}

// Movement describes how a piece kind moves: the vectors it walks and
// whether it slides along them until blocked or only steps once.
type Movement struct {
	Directions []Direction
	Sliding    bool
}

var (
	diagonalDirs = []Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = append(append([]Direction{}, straightDirs...), diagonalDirs...)
	knightDirs   = []Direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// catalog holds the colour-independent movement of every non-pawn kind.
var catalog = map[PieceKind]Movement{
	Knight: {Directions: knightDirs},
	Bishop: {Directions: diagonalDirs, Sliding: true},
	Rook:   {Directions: straightDirs, Sliding: true},
	Queen:  {Directions: allDirs, Sliding: true},
	King:   {Directions: allDirs},
}

// Pawns are colour-asymmetric: forward, double forward from the initial
// rank, and the two diagonal capture vectors.
var pawnMovement = [2]Movement{
	Black: {Directions: []Direction{{-1, 0}, {-2, 0}, {-1, 1}, {-1, -1}}},
	White: {Directions: []Direction{{1, 0}, {2, 0}, {1, 1}, {1, -1}}},
}

// MovementOf returns the movement descriptor for a piece kind of the given colour.
func MovementOf(kind PieceKind, colour Colour) Movement {
	if kind == Pawn {
		return pawnMovement[colour]
	}
	return catalog[kind]
}

// IsPawnCapture reports whether a pawn vector is one of its diagonal capture vectors.
func (d Direction) IsPawnCapture() bool {
	return d.DFile != 0
}

// IsDoubleStep reports whether a pawn vector is the two-square advance.
func (d Direction) IsDoubleStep() bool {
	return d.DRank == 2 || d.DRank == -2
}

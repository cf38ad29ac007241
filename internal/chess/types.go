// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENToken returns the active-colour token used in FEN ("w" or "b").
func (c Colour) FENToken() string {
	if c == White {
		return "w"
	}
	return "b"
}

// ParseColourToken converts a FEN active-colour token to a Colour.
func ParseColourToken(token string) (Colour, bool) {
	switch token {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return Black, false
}

// PawnDirection returns +1 for White, -1 for Black (for pawn direction).
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of the colour start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotable reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotable() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a piece letter (either case) to a PieceKind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour

	// Moved is only tracked for pawns, rooks and kings.
	Moved bool
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty returns true if the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether the piece is of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour
}

// TracksMoved reports whether the moved-flag is relevant for this piece.
func (p Piece) TracksMoved() bool {
	return p.Kind == Pawn || p.Kind == Rook || p.Kind == King
}

// FENLetter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, 0 for an empty square.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return 0
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece, or "-" when empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "-"
	}
	return string(p.FENLetter())
}

// PieceFromFEN converts a FEN letter to a piece.
func PieceFromFEN(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == Empty {
		return Piece{}, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Kind: kind, Colour: colour}, true
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

package chess

import "strings"

// MoveType is a set of tags describing an executed move.
type MoveType uint8

const (
	Capture MoveType = 1 << iota
	Castling
	Check
	CheckMate
	Promotion
	BasicMove
)

// NoMoveType is the empty tag set.
const NoMoveType MoveType = 0

var moveTypeNames = []struct {
	tag  MoveType
	name string
}{
	{Capture, "Capture"},
	{Castling, "Castling"},
	{Check, "Check"},
	{CheckMate, "CheckMate"},
	{Promotion, "Promotion"},
	{BasicMove, "BasicMove"},
}

// Has returns true if every tag in other is present.
func (t MoveType) Has(other MoveType) bool {
	return other != 0 && t&other == other
}

// With returns the set with the given tags added.
func (t MoveType) With(other MoveType) MoveType {
	return t | other
}

// Tags returns the individual tags in declaration order.
func (t MoveType) Tags() []MoveType {
	var tags []MoveType
	for _, entry := range moveTypeNames {
		if t&entry.tag != 0 {
			tags = append(tags, entry.tag)
		}
	}
	return tags
}

// String returns the tag names joined with "+", e.g. "Capture+Check".
func (t MoveType) String() string {
	if t == NoMoveType {
		return "None"
	}
	var names []string
	for _, entry := range moveTypeNames {
		if t&entry.tag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "+")
}

// LastMove records the most recently executed move.
type LastMove struct {
	// The piece as it stood before moving.
	Piece Piece

	From Coord
	To   Coord

	// The promoted-to kind, Empty if the move was not a promotion.
	Promotion PieceKind

	Types MoveType
}

// IsDoublePawnPush reports whether the move was a pawn's two-square advance.
func (m *LastMove) IsDoublePawnPush() bool {
	if m == nil || m.Piece.Kind != Pawn {
		return false
	}
	d := m.To.Rank - m.From.Rank
	return m.From.File == m.To.File && (d == 2 || d == -2)
}

// MoveRequest is the coordinate tuple a caller submits to make a move.
type MoveRequest struct {
	From Coord
	To   Coord

	// Promotion is Empty when none was requested.
	Promotion PieceKind
}

// String returns the request in long algebraic coordinates, e.g. "e7e8q".
func (r MoveRequest) String() string {
	s := r.From.String() + r.To.String()
	if r.Promotion != Empty {
		s += strings.ToLower(string(r.Promotion.Letter()))
	}
	return s
}

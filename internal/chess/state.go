package chess

import "sort"

// CheckState tells whether the side about to move is in check, and where
// its king stands when it is. The zero value means not in check.
type CheckState struct {
	king    Coord
	inCheck bool
}

// NotInCheck returns the state of a side whose king is not attacked.
func NotInCheck() CheckState {
	return CheckState{}
}

// InCheck returns the state of a side whose king on the given square is attacked.
func InCheck(king Coord) CheckState {
	return CheckState{king: king, inCheck: true}
}

// IsCheck returns true if the king is attacked.
func (s CheckState) IsCheck() bool {
	return s.inCheck
}

// King returns the attacked king's square; ok is false when not in check.
func (s CheckState) King() (Coord, bool) {
	return s.king, s.inCheck
}

// String returns a short description of the state.
func (s CheckState) String() string {
	if !s.inCheck {
		return "NotInCheck"
	}
	return "InCheck(" + s.king.String() + ")"
}

// SafeSquares maps each origin holding a piece of the side to move to its
// legal destinations. Origins with no legal destination are absent.
type SafeSquares map[Coord][]Coord

// Contains reports whether moving from one square to another is legal.
func (s SafeSquares) Contains(from, to Coord) bool {
	for _, c := range s[from] {
		if c == to {
			return true
		}
	}
	return false
}

// For returns the legal destinations for the piece on the given square.
func (s SafeSquares) For(from Coord) []Coord {
	return s[from]
}

// Len returns the total number of legal destinations over all origins.
func (s SafeSquares) Len() int {
	n := 0
	for _, dests := range s {
		n += len(dests)
	}
	return n
}

// Origins returns every origin with at least one destination, rank-major.
func (s SafeSquares) Origins() []Coord {
	origins := make([]Coord, 0, len(s))
	for from := range s {
		origins = append(origins, from)
	}
	sort.Slice(origins, func(i, j int) bool {
		return origins[i].Less(origins[j])
	})
	return origins
}

// Requests returns every legal move as a request, ordered by origin.
// Promotion requests are left with an Empty kind.
func (s SafeSquares) Requests() []MoveRequest {
	var reqs []MoveRequest
	for _, from := range s.Origins() {
		for _, to := range s[from] {
			reqs = append(reqs, MoveRequest{From: from, To: to})
		}
	}
	return reqs
}

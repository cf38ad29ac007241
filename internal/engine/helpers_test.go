package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// sq converts an algebraic square name, panicking on bad input.
func sq(name string) chess.Coord {
	c, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return c
}

// req builds a move request from coordinate notation such as "e7e8q".
func req(move string) chess.MoveRequest {
	r := chess.MoveRequest{From: sq(move[0:2]), To: sq(move[2:4])}
	if len(move) == 5 {
		r.Promotion = chess.KindFromLetter(move[4])
	}
	return r
}

// mustLoad loads a FEN that the test expects to be valid.
func mustLoad(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := LoadFEN(fen)
	if err != nil {
		t.Fatalf("LoadFEN(%q) error: %v", fen, err)
	}
	return pos
}

// play applies coordinate moves in order and returns the last result.
func play(t *testing.T, pos *Position, moves ...string) MoveResult {
	t.Helper()
	var result MoveResult
	for _, m := range moves {
		var err error
		result, err = ApplyMove(pos, pos.SafeSquares(), req(m))
		if err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", m, err)
		}
	}
	return result
}

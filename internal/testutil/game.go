// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Ruy Lopez opening, as coordinate moves and the resulting FEN.
var (
	RuyLopezMoves = []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"}
	RuyLopezFEN   = "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"
)

// Scholar's mate, ending with White's queen capturing on f7.
var ScholarsMateMoves = []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"}

// Square converts an algebraic square name, failing the test on bad input.
func Square(t *testing.T, name string) chess.Coord {
	t.Helper()
	c, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return c
}

// Request converts coordinate notation such as "e2e4" or "a7a8n".
func Request(t *testing.T, move string) chess.MoveRequest {
	t.Helper()
	if len(move) != 4 && len(move) != 5 {
		t.Fatalf("bad move %q", move)
	}
	req := chess.MoveRequest{From: Square(t, move[0:2]), To: Square(t, move[2:4])}
	if len(move) == 5 {
		req.Promotion = chess.KindFromLetter(move[4])
	}
	return req
}

// MustNewGame creates a game from fen, or the starting position when fen is
// empty. It calls t.Fatal if the FEN is rejected.
func MustNewGame(t *testing.T, fen string) *game.Game {
	t.Helper()
	if fen == "" {
		return game.New()
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustPlay applies coordinate moves in order and fails the test on the first
// rejected move.
func MustPlay(t *testing.T, g *game.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := g.Apply(Request(t, m)); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
	}
}

// MustPlayGame creates a game from fen and plays moves on it.
func MustPlayGame(t *testing.T, fen string, moves ...string) *game.Game {
	t.Helper()
	g := MustNewGame(t, fen)
	MustPlay(t, g, moves...)
	return g
}

// Package engine implements the chess rules: legal move generation, move
// execution, algebraic notation, game termination and the FEN codec.
//
// Every function operates on a Position supplied by the caller. The package
// keeps no state of its own and performs no locking; a Position must not be
// shared between goroutines without external synchronisation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Position is everything needed to continue a game from one point.
type Position struct {
	Board  *chess.Board
	ToMove chess.Colour

	// LastMove is nil when no move is known, e.g. at the start or after
	// loading a FEN without an en passant target.
	LastMove *chess.LastMove

	// HalfmoveClock counts plies since the last pawn move or capture.
	HalfmoveClock int

	// MoveNumber is the full-move number, incremented after Black moves.
	MoveNumber int
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	return &Position{
		Board:      chess.NewInitialBoard(),
		ToMove:     chess.White,
		MoveNumber: 1,
	}
}

// Copy returns a deep copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	cp.Board = p.Board.Copy()
	if p.LastMove != nil {
		lm := *p.LastMove
		cp.LastMove = &lm
	}
	return &cp
}

// FiftyMoveCounter returns the fifty-move counter in full moves, advancing
// by one half per ply without a pawn move or capture.
func (p *Position) FiftyMoveCounter() float64 {
	return float64(p.HalfmoveClock) / 2
}

// SafeSquares computes the legal moves of the side to move.
func (p *Position) SafeSquares() chess.SafeSquares {
	return ComputeSafeSquares(p.Board, p.ToMove, p.LastMove)
}

// CheckState reports whether the side to move is in check.
func (p *Position) CheckState() chess.CheckState {
	return CheckStateFor(p.Board, p.ToMove)
}

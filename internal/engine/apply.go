package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveResult is everything produced by executing one move.
type MoveResult struct {
	Move *chess.LastMove

	// SAN is the move in standard algebraic notation.
	SAN string

	// CheckState and SafeSquares describe the side now to move.
	CheckState  chess.CheckState
	SafeSquares chess.SafeSquares
}

// ApplyMove validates req against the legal moves in safe and executes it
// on pos. safe must have been computed for pos. On error pos is unchanged.
//
// A pawn reaching the last rank without a promotion kind becomes a queen.
func ApplyMove(pos *Position, safe chess.SafeSquares, req chess.MoveRequest) (MoveResult, error) {
	promotion, err := validateMove(pos, safe, req)
	if err != nil {
		return MoveResult{}, err
	}

	board := pos.Board
	from, to := req.From, req.To
	piece := board.At(from)

	var types chess.MoveType
	enPassant := isEnPassant(board, piece, from, to)
	if !board.At(to).IsEmpty() || enPassant {
		types = types.With(chess.Capture)
	}
	side, castling := castleSideOf(from, to)
	castling = castling && piece.Kind == chess.King
	if castling {
		types = types.With(chess.Castling)
	}
	if promotion != chess.Empty {
		types = types.With(chess.Promotion)
	}

	// Notation needs the board as it was before the move.
	notation := sanInput{
		Board:     board.Copy(),
		Safe:      safe,
		Piece:     piece,
		From:      from,
		To:        to,
		Promotion: promotion,
	}

	moved := piece
	if moved.TracksMoved() {
		moved.Moved = true
	}

	if castling {
		rookFrom, rookTo := castleRookSquares(from.Rank, side)
		rook := board.At(rookFrom)
		rook.Moved = true
		board.Clear(rookFrom)
		board.Set(rookTo, rook)
	}
	if enPassant {
		board.Clear(chess.Sq(from.Rank, to.File))
	}

	placed := moved
	if promotion != chess.Empty {
		placed = chess.Piece{Kind: promotion, Colour: piece.Colour, Moved: true}
	}
	board.Clear(from)
	board.Set(to, placed)

	if piece.Kind == chess.Pawn || types.Has(chess.Capture) {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if piece.Colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = piece.Colour.Opposite()

	last := &chess.LastMove{
		Piece:     moved,
		From:      from,
		To:        to,
		Promotion: promotion,
	}
	pos.LastMove = last

	check := CheckStateFor(board, pos.ToMove)
	nextSafe := ComputeSafeSquares(board, pos.ToMove, last)

	if check.IsCheck() {
		if nextSafe.Len() == 0 {
			types = types.With(chess.CheckMate)
		} else {
			types = types.With(chess.Check)
		}
	}
	if types == chess.NoMoveType {
		types = chess.BasicMove
	}
	last.Types = types
	notation.Types = types

	return MoveResult{
		Move:        last,
		SAN:         san(notation),
		CheckState:  check,
		SafeSquares: nextSafe,
	}, nil
}

// validateMove checks every precondition of a move before anything is
// touched and resolves the promotion kind.
func validateMove(pos *Position, safe chess.SafeSquares, req chess.MoveRequest) (chess.PieceKind, error) {
	moveErr := func(err error, piece chess.Piece) error {
		e := &errors.MoveError{
			Err:  err,
			Ply:  plyNumber(pos),
			From: req.From.String(),
			To:   req.To.String(),
		}
		if !piece.IsEmpty() {
			e.Piece = piece.String()
		}
		return e
	}

	if !req.From.Valid() || !req.To.Valid() {
		return chess.Empty, moveErr(errors.ErrInvalidCoordinate, chess.Piece{})
	}

	piece := pos.Board.At(req.From)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return chess.Empty, moveErr(errors.ErrNotYourPiece, piece)
	}

	if !safe.Contains(req.From, req.To) {
		return chess.Empty, moveErr(errors.ErrIllegalMove, piece)
	}

	if !isPromotionMove(piece, req.To) {
		if req.Promotion != chess.Empty {
			return chess.Empty, moveErr(errors.ErrInvalidPromotion, piece)
		}
		return chess.Empty, nil
	}

	switch {
	case req.Promotion == chess.Empty:
		return chess.Queen, nil
	case req.Promotion.IsPromotable():
		return req.Promotion, nil
	default:
		return chess.Empty, moveErr(errors.ErrInvalidPromotion, piece)
	}
}

// plyNumber returns the 1-based ply of the next move in pos.
func plyNumber(pos *Position) int {
	ply := (pos.MoveNumber - 1) * 2
	if pos.ToMove == chess.White {
		return ply + 1
	}
	return ply + 2
}

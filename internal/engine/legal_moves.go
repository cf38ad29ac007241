package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ComputeSafeSquares returns, for every piece of the active colour, the
// destinations it may move to without leaving its own king in check.
// Castling and en passant destinations are included. The board is left
// exactly as it was found.
func ComputeSafeSquares(board *chess.Board, active chess.Colour, lastMove *chess.LastMove) chess.SafeSquares {
	safe := chess.SafeSquares{}

	for _, placed := range board.Pieces(active) {
		from := placed.At
		var dests []chess.Coord

		for _, to := range pseudoLegalDestinations(board, placed.Piece, from) {
			if isPositionSafeAfterMove(board, active, from, to) {
				dests = append(dests, to)
			}
		}

		switch placed.Piece.Kind {
		case chess.King:
			for _, side := range []castleSide{kingside, queenside} {
				if canCastle(board, placed.Piece, from, side) {
					dests = append(dests, castleKingTarget(from, side))
				}
			}
		case chess.Pawn:
			if to, ok := canCaptureEnPassant(board, placed.Piece, from, lastMove); ok {
				dests = append(dests, to)
			}
		}

		if len(dests) > 0 {
			safe[from] = dests
		}
	}

	return safe
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, lastMove *chess.LastMove) bool {
	return ComputeSafeSquares(board, colour, lastMove).Len() > 0
}

// pseudoLegalDestinations walks the piece's movement vectors, ignoring
// whether its own king would be left in check.
func pseudoLegalDestinations(board *chess.Board, piece chess.Piece, from chess.Coord) []chess.Coord {
	if piece.Kind == chess.Pawn {
		return pawnDestinations(board, piece, from)
	}

	var dests []chess.Coord
	movement := chess.MovementOf(piece.Kind, piece.Colour)
	for _, dir := range movement.Directions {
		to := from.Offset(dir)
		for to.Valid() {
			occupant := board.At(to)
			if !occupant.IsEmpty() && occupant.Colour == piece.Colour {
				break
			}
			dests = append(dests, to)
			if !movement.Sliding || !occupant.IsEmpty() {
				break
			}
			to = to.Offset(dir)
		}
	}
	return dests
}

// isPositionSafeAfterMove simulates moving from one square to another and
// reports whether the mover's king is then out of check.
func isPositionSafeAfterMove(board *chess.Board, colour chess.Colour, from, to chess.Coord) bool {
	t := board.Begin()
	defer t.Revert()

	t.Move(from, to)
	return !IsInCheck(board, colour)
}

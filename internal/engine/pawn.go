package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnDestinations returns the pawn's pushes and ordinary captures.
// The double push needs the initial rank and both squares ahead empty;
// diagonal vectors need an enemy piece on the destination.
func pawnDestinations(board *chess.Board, pawn chess.Piece, from chess.Coord) []chess.Coord {
	var dests []chess.Coord

	for _, dir := range chess.MovementOf(chess.Pawn, pawn.Colour).Directions {
		to := from.Offset(dir)
		if !to.Valid() {
			continue
		}
		occupant := board.At(to)

		switch {
		case dir.IsPawnCapture():
			if occupant.IsEmpty() || occupant.Colour == pawn.Colour {
				continue
			}
		case dir.IsDoubleStep():
			if from.Rank != chess.PawnRank(pawn.Colour) {
				continue
			}
			if !occupant.IsEmpty() || !isPathClear(board, from, to) {
				continue
			}
		default:
			if !occupant.IsEmpty() {
				continue
			}
		}

		dests = append(dests, to)
	}

	return dests
}

// canCaptureEnPassant returns the en passant destination for the pawn on
// from, if the previous move was an enemy double push landing beside it
// and the capture does not expose the mover's king.
func canCaptureEnPassant(board *chess.Board, pawn chess.Piece, from chess.Coord, lastMove *chess.LastMove) (chess.Coord, bool) {
	if !lastMove.IsDoublePawnPush() || lastMove.Piece.Colour == pawn.Colour {
		return chess.Coord{}, false
	}

	victim := lastMove.To
	if victim.Rank != from.Rank || abs(victim.File-from.File) != 1 {
		return chess.Coord{}, false
	}
	if !board.At(victim).Is(pawn.Colour.Opposite(), chess.Pawn) {
		return chess.Coord{}, false
	}

	to := chess.Sq(from.Rank+chess.PawnDirection(pawn.Colour), victim.File)
	if !board.At(to).IsEmpty() {
		return chess.Coord{}, false
	}

	t := board.Begin()
	defer t.Revert()

	t.Remove(victim)
	t.Move(from, to)
	if IsInCheck(board, pawn.Colour) {
		return chess.Coord{}, false
	}
	return to, true
}

// isEnPassant reports whether a legal pawn move is an en passant capture:
// a diagonal step onto an empty square.
func isEnPassant(board *chess.Board, piece chess.Piece, from, to chess.Coord) bool {
	return piece.Kind == chess.Pawn && from.File != to.File && board.At(to).IsEmpty()
}

// isPromotionMove reports whether a pawn move reaches the far rank.
func isPromotionMove(piece chess.Piece, to chess.Coord) bool {
	return piece.Kind == chess.Pawn && to.Rank == chess.HomeRank(piece.Colour.Opposite())
}

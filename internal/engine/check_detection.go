package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// CheckStateFor returns the check state of the given colour. Unlike
// IsInCheck it carries the king's square, ready to be stored by the caller.
func CheckStateFor(board *chess.Board, colour chess.Colour) chess.CheckState {
	king, ok := board.FindKing(colour)
	if !ok || !isSquareAttacked(board, king, colour.Opposite()) {
		return chess.NotInCheck()
	}
	return chess.InCheck(king)
}

// isSquareAttacked returns true if any piece of byColour attacks the square.
func isSquareAttacked(board *chess.Board, target chess.Coord, byColour chess.Colour) bool {
	for _, placed := range board.Pieces(byColour) {
		if attacks(board, placed.Piece, placed.At, target) {
			return true
		}
	}
	return false
}

// attacks reports whether the piece standing on from reaches target along
// one of its attack vectors. Pawns attack only diagonally.
func attacks(board *chess.Board, piece chess.Piece, from, target chess.Coord) bool {
	movement := chess.MovementOf(piece.Kind, piece.Colour)
	for _, dir := range movement.Directions {
		if piece.Kind == chess.Pawn && !dir.IsPawnCapture() {
			continue
		}
		sq := from.Offset(dir)
		for sq.Valid() {
			if sq == target {
				return true
			}
			if !movement.Sliding || !board.At(sq).IsEmpty() {
				break
			}
			sq = sq.Offset(dir)
		}
	}
	return false
}

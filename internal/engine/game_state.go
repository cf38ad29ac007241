package engine

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *Position) bool {
	return IsInCheck(pos.Board, pos.ToMove) && !HasLegalMoves(pos.Board, pos.ToMove, pos.LastMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *Position) bool {
	return !IsInCheck(pos.Board, pos.ToMove) && !HasLegalMoves(pos.Board, pos.ToMove, pos.LastMove)
}

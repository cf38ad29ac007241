package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// squaresBetween returns the squares strictly between two squares on a
// shared rank, file or diagonal, nearest first. It returns nil otherwise.
func squaresBetween(from, to chess.Coord) []chess.Coord {
	dRank := to.Rank - from.Rank
	dFile := to.File - from.File
	if dRank != 0 && dFile != 0 && abs(dRank) != abs(dFile) {
		return nil
	}

	step := chess.Direction{DRank: sign(dRank), DFile: sign(dFile)}
	var squares []chess.Coord
	for sq := from.Offset(step); sq != to && sq.Valid(); sq = sq.Offset(step) {
		squares = append(squares, sq)
	}
	return squares
}

// isPathClear returns true if every square strictly between from and to is empty.
func isPathClear(board *chess.Board, from, to chess.Coord) bool {
	for _, sq := range squaresBetween(from, to) {
		if !board.At(sq).IsEmpty() {
			return false
		}
	}
	return true
}

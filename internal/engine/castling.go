package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

type castleSide int

const (
	kingside castleSide = iota
	queenside
)

// King and rook home files.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// rookFile returns the home file of the rook for the given side.
func (s castleSide) rookFile() int {
	if s == kingside {
		return kingsideRookFile
	}
	return queensideRookFile
}

// step returns the file direction the king travels.
func (s castleSide) step() int {
	if s == kingside {
		return 1
	}
	return -1
}

// castleKingTarget returns the square the king lands on.
func castleKingTarget(king chess.Coord, side castleSide) chess.Coord {
	return chess.Sq(king.Rank, king.File+2*side.step())
}

// castleRookSquares returns the rook's origin and destination for a castle.
func castleRookSquares(rank int, side castleSide) (from, to chess.Coord) {
	return chess.Sq(rank, side.rookFile()), chess.Sq(rank, kingFile+side.step())
}

// castleSideOf returns the side of a king move that spans two files.
func castleSideOf(from, to chess.Coord) (castleSide, bool) {
	delta := to.File - from.File
	if abs(delta) != 2 || from.Rank != to.Rank {
		return kingside, false
	}
	if sign(delta) > 0 {
		return kingside, true
	}
	return queenside, true
}

// canCastle checks whether the king on from may castle to the given side.
// Neither king nor rook may have moved, the king may not be in check, the
// squares between them must be empty, and every square the king crosses,
// its destination included, must be safe.
func canCastle(board *chess.Board, king chess.Piece, from chess.Coord, side castleSide) bool {
	home := chess.HomeRank(king.Colour)
	if king.Moved || from != chess.Sq(home, kingFile) {
		return false
	}

	rookFrom, _ := castleRookSquares(home, side)
	rook := board.At(rookFrom)
	if !rook.Is(king.Colour, chess.Rook) || rook.Moved {
		return false
	}

	if IsInCheck(board, king.Colour) {
		return false
	}

	if !isPathClear(board, from, rookFrom) {
		return false
	}

	for i := 1; i <= 2; i++ {
		transit := chess.Sq(home, from.File+i*side.step())
		if !isPositionSafeAfterMove(board, king.Colour, from, transit) {
			return false
		}
	}

	return true
}

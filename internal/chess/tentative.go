package chess

// maxTentativeSquares bounds the squares one simulation may touch:
// origin, destination and an en passant victim.
const maxTentativeSquares = 4

type savedSquare struct {
	at    Coord
	piece Piece
}

// Tentative records board edits made during a legality simulation so they
// can be undone exactly. Use it as:
//
//	t := board.Begin()
//	defer t.Revert()
//	t.Move(from, to)
type Tentative struct {
	board *Board
	saved [maxTentativeSquares]savedSquare
	n     int
}

// Begin starts a tentative edit of the board.
func (b *Board) Begin() Tentative {
	return Tentative{board: b}
}

func (t *Tentative) save(c Coord) {
	if t.n == maxTentativeSquares {
		panic("chess: tentative edit touched too many squares")
	}
	t.saved[t.n] = savedSquare{at: c, piece: t.board.At(c)}
	t.n++
}

// Move relocates the piece on from to to, overwriting whatever stood there.
func (t *Tentative) Move(from, to Coord) {
	t.save(from)
	t.save(to)
	piece := t.board.At(from)
	t.board.Clear(from)
	t.board.Set(to, piece)
}

// Remove empties a square.
func (t *Tentative) Remove(c Coord) {
	t.save(c)
	t.board.Clear(c)
}

// Revert restores every touched square, newest edit first. It is safe to
// call more than once.
func (t *Tentative) Revert() {
	for i := t.n - 1; i >= 0; i-- {
		t.board.Set(t.saved[i].at, t.saved[i].piece)
	}
	t.n = 0
}

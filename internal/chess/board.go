package chess

// Board is the 8x8 grid of squares, indexed [rank][file].
// It holds only piece placement; side to move and clocks live with the position.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// View is an immutable snapshot of a board as FEN letters, 0 for empty squares.
type View [BoardSize][BoardSize]byte

// At returns the FEN letter at the given coordinate, 0 if empty.
func (v View) At(c Coord) byte {
	if !c.Valid() {
		return 0
	}
	return v[c.Rank][c.File]
}

// PlacedPiece is a piece together with the square it stands on.
type PlacedPiece struct {
	Piece Piece
	At    Coord
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[0][file] = W(backRank[file])
		b.squares[1][file] = W(Pawn)
		b.squares[6][file] = B(Pawn)
		b.squares[7][file] = B(backRank[file])
	}
}

// At returns the piece at the given coordinate. Off-board coordinates read as empty.
func (b *Board) At(c Coord) Piece {
	if !c.Valid() {
		return Piece{}
	}
	return b.squares[c.Rank][c.File]
}

// Set places a piece at the given coordinate.
func (b *Board) Set(c Coord, p Piece) {
	if c.Valid() {
		b.squares[c.Rank][c.File] = p
	}
}

// Clear empties the given square.
func (b *Board) Clear(c Coord) {
	b.Set(c, Piece{})
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// View returns the board as a grid of FEN letters.
func (b *Board) View() View {
	var v View
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			v[rank][file] = b.squares[rank][file].FENLetter()
		}
	}
	return v
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Coord, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.squares[rank][file].Is(colour, King) {
				return Sq(rank, file), true
			}
		}
	}
	return Coord{}, false
}

// Pieces returns every piece of the given colour in rank-major order.
func (b *Board) Pieces(colour Colour) []PlacedPiece {
	var pieces []PlacedPiece
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.squares[rank][file]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, PlacedPiece{Piece: p, At: Sq(rank, file)})
			}
		}
	}
	return pieces
}

// CountKings returns the number of kings of the given colour.
func (b *Board) CountKings(colour Colour) int {
	count := 0
	for _, placed := range b.Pieces(colour) {
		if placed.Piece.Kind == King {
			count++
		}
	}
	return count
}

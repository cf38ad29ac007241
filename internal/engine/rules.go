package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// fiftyMovePlies is the number of plies without a pawn move or capture
// that ends the game.
const fiftyMovePlies = 100

// Reason is why a game ended.
type Reason int

const (
	NotOver Reason = iota
	InsufficientMaterial
	Checkmate
	Stalemate
	ThreefoldRepetition
	FiftyMoveRule
)

// String returns the name of the reason.
func (r Reason) String() string {
	names := []string{"NotOver", "InsufficientMaterial", "Checkmate", "Stalemate", "ThreefoldRepetition", "FiftyMoveRule"}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Outcome is the verdict of the termination rules for one position.
type Outcome struct {
	Reason Reason

	// Winner is only meaningful when Reason is Checkmate.
	Winner chess.Colour
}

// Over returns true if the game has ended.
func (o Outcome) Over() bool {
	return o.Reason != NotOver
}

// Message returns the human-readable verdict, empty while the game goes on.
func (o Outcome) Message() string {
	switch o.Reason {
	case InsufficientMaterial:
		return "Draw due to insufficient material"
	case Checkmate:
		return o.Winner.String() + " won by checkmate"
	case Stalemate:
		return "Stalemate"
	case ThreefoldRepetition:
		return "Draw due to threefold repetition"
	case FiftyMoveRule:
		return "Draw due to fifty move rule"
	default:
		return ""
	}
}

// Result returns the game result token: "1-0", "0-1", "1/2-1/2" or "*".
func (o Outcome) Result() string {
	switch o.Reason {
	case NotOver:
		return "*"
	case Checkmate:
		if o.Winner == chess.White {
			return "1-0"
		}
		return "0-1"
	default:
		return "1/2-1/2"
	}
}

// Evaluate applies the termination rules in order: insufficient material,
// then no legal moves (checkmate or stalemate), then threefold repetition,
// then the fifty-move rule. safe and check must describe pos.
func Evaluate(pos *Position, safe chess.SafeSquares, check chess.CheckState, threefold bool) Outcome {
	if HasInsufficientMaterial(pos.Board) {
		return Outcome{Reason: InsufficientMaterial}
	}

	if safe.Len() == 0 {
		if check.IsCheck() {
			return Outcome{Reason: Checkmate, Winner: pos.ToMove.Opposite()}
		}
		return Outcome{Reason: Stalemate}
	}

	if threefold {
		return Outcome{Reason: ThreefoldRepetition}
	}

	if pos.HalfmoveClock >= fiftyMovePlies {
		return Outcome{Reason: FiftyMoveRule}
	}

	return Outcome{}
}

// HasInsufficientMaterial returns true if the position is drawn for lack
// of mating material. Counts include kings:
//   - K vs K
//   - K+N or K+B vs K
//   - K+B vs K+B with bishops on the same square colour
//   - K+N+N vs K
//   - K and any number of same-coloured bishops vs K
func HasInsufficientMaterial(board *chess.Board) bool {
	white := board.Pieces(chess.White)
	black := board.Pieces(chess.Black)

	switch {
	case len(white) == 1 && len(black) == 1:
		return true

	case len(white) == 1 && len(black) == 2:
		return hasMinorPiece(black)

	case len(white) == 2 && len(black) == 1:
		return hasMinorPiece(white)

	case len(white) == 2 && len(black) == 2:
		wb, wok := findKind(white, chess.Bishop)
		bb, bok := findKind(black, chess.Bishop)
		if wok && bok && wb.IsDark() == bb.IsDark() {
			return true
		}
	}

	if len(white) == 3 && len(black) == 1 && countKind(white, chess.Knight) == 2 ||
		len(white) == 1 && len(black) == 3 && countKind(black, chess.Knight) == 2 {
		return true
	}

	if len(white) >= 3 && len(black) == 1 && onlySameColouredBishops(white) ||
		len(white) == 1 && len(black) >= 3 && onlySameColouredBishops(black) {
		return true
	}

	return false
}

func hasMinorPiece(pieces []chess.PlacedPiece) bool {
	return countKind(pieces, chess.Knight)+countKind(pieces, chess.Bishop) > 0
}

func countKind(pieces []chess.PlacedPiece, kind chess.PieceKind) int {
	n := 0
	for _, p := range pieces {
		if p.Piece.Kind == kind {
			n++
		}
	}
	return n
}

func findKind(pieces []chess.PlacedPiece, kind chess.PieceKind) (chess.Coord, bool) {
	for _, p := range pieces {
		if p.Piece.Kind == kind {
			return p.At, true
		}
	}
	return chess.Coord{}, false
}

// onlySameColouredBishops reports whether every piece but the king is a
// bishop and all of them stand on one square colour.
func onlySameColouredBishops(pieces []chess.PlacedPiece) bool {
	if countKind(pieces, chess.Bishop) != len(pieces)-1 {
		return false
	}
	dark, light := false, false
	for _, p := range pieces {
		if p.Piece.Kind != chess.Bishop {
			continue
		}
		if p.At.IsDark() {
			dark = true
		} else {
			light = true
		}
	}
	return dark != light
}

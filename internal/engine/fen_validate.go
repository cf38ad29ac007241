package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// maxFENHalfmoveClock is the largest halfmove clock a loadable FEN may carry.
const maxFENHalfmoveClock = 50

// validCastlingFields is every castling field in canonical KQkq order.
var validCastlingFields = func() map[string]bool {
	set := map[string]bool{"-": true}
	letters := "KQkq"
	for mask := 1; mask < 1<<len(letters); mask++ {
		var sb strings.Builder
		for i := 0; i < len(letters); i++ {
			if mask&(1<<i) != 0 {
				sb.WriteByte(letters[i])
			}
		}
		set[sb.String()] = true
	}
	return set
}()

// validEnPassantField reports whether s is "-" or a square on rank 3 or 6.
func validEnPassantField(s string) bool {
	if s == "-" {
		return true
	}
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && (s[1] == '3' || s[1] == '6')
}

// Validate reports whether fen describes a loadable position.
func Validate(fen string) error {
	_, err := LoadFEN(fen)
	return err
}

// LoadFEN decodes fen and checks that the position can be played from:
// well-formed fields, halfmove clock within 50 and the fullmove number,
// one king per side, no pawns on the first or last rank, a real pawn
// behind any en passant target, the side not to move not in check, and
// at least one legal move for the side to move. Nothing is returned
// unless every check passes.
func LoadFEN(fen string) (*Position, error) {
	fields, err := splitFields(fen)
	if err != nil {
		return nil, err
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	if err := validateCounters(fields); err != nil {
		return nil, err
	}

	pos, err := decodeChecked(fen, fields)
	if err != nil {
		return nil, err
	}

	if !HasLegalMoves(pos.Board, pos.ToMove, pos.LastMove) {
		return nil, invalidFEN("", "", pos.ToMove.String()+" has no legal moves")
	}

	return pos, nil
}

// ResumeFEN decodes a FEN written by Encode for a position reached in play.
// The board checks of LoadFEN apply; the counter limits and the legal move
// requirement do not, so finished games and long quiet games decode.
func ResumeFEN(fen string) (*Position, error) {
	fields, err := splitFields(fen)
	if err != nil {
		return nil, err
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	return decodeChecked(fen, fields)
}

// decodeChecked decodes fen and applies the board checks shared by
// LoadFEN and ResumeFEN.
func decodeChecked(fen string, fields []string) (*Position, error) {
	pos, err := Decode(fen)
	if err != nil {
		return nil, err
	}

	if err := validateBoard(pos.Board); err != nil {
		return nil, err
	}

	target := fields[fieldEnPassant]
	if target != "-" && !enPassantTargetExists(pos.Board, pos.LastMove) {
		return nil, invalidFEN("en passant", target, "no pawn could have just passed over this square")
	}

	if IsInCheck(pos.Board, pos.ToMove.Opposite()) {
		return nil, invalidFEN("", "", pos.ToMove.Opposite().String()+" is in check but not to move")
	}

	return pos, nil
}

// validateFields checks the active colour, castling and en passant fields.
func validateFields(fields []string) error {
	active := fields[fieldActive]
	if _, ok := chess.ParseColourToken(active); !ok {
		return invalidFEN("active colour", active, "player to move must be either 'w' or 'b'")
	}

	castling := fields[fieldCastling]
	if !validCastlingFields[castling] {
		return invalidFEN("castling", castling, "use '-' for no rights, or K, Q, k and q in that order")
	}

	target := fields[fieldEnPassant]
	if !validEnPassantField(target) {
		return invalidFEN("en passant", target, "must be '-' or a square on rank 3 or 6")
	}
	if active == "w" && strings.HasSuffix(target, "3") || active == "b" && strings.HasSuffix(target, "6") {
		return invalidFEN("en passant", target, "square is invalid for player "+active)
	}

	return nil
}

// validateCounters applies the limits a loaded position's counters must meet.
func validateCounters(fields []string) error {
	halfmove, err := parseCounter("halfmove clock", fields[fieldHalfmove])
	if err != nil {
		return err
	}
	if halfmove > maxFENHalfmoveClock {
		return invalidFEN("halfmove clock", fields[fieldHalfmove], "must not exceed "+strconv.Itoa(maxFENHalfmoveClock))
	}

	fullmove, err := parseCounter("fullmove number", fields[fieldFullmove])
	if err != nil {
		return err
	}
	if halfmove > fullmove {
		return invalidFEN("halfmove clock", fields[fieldHalfmove], "must not exceed the fullmove number")
	}

	return nil
}

// validateBoard checks king counts and pawn placement. Castling rights the
// board cannot support are dropped by Decode rather than rejected.
func validateBoard(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch n := board.CountKings(colour); {
		case n == 0:
			return invalidFEN("placement", "", "both sides must have a king")
		case n > 1:
			return invalidFEN("placement", "", colour.String()+" has more than one king")
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range []int{0, chess.BoardSize - 1} {
			sq := chess.Sq(rank, file)
			if board.At(sq).Kind == chess.Pawn {
				return invalidFEN("placement", "", "pawn on "+sq.String()+": pawns cannot stand on the first or last rank")
			}
		}
	}

	return nil
}

// enPassantTargetExists checks the pawn implied by a decoded en passant
// target: it stands on its landing square, and the squares it passed
// over and started from are empty.
func enPassantTargetExists(board *chess.Board, implied *chess.LastMove) bool {
	if implied == nil {
		return false
	}
	passed := chess.Sq((implied.From.Rank+implied.To.Rank)/2, implied.From.File)
	return board.At(implied.To).Is(implied.Piece.Colour, chess.Pawn) &&
		board.At(passed).IsEmpty() &&
		board.At(implied.From).IsEmpty()
}

// CandidateEnPassantSquares lists the en passant targets a position editor
// could offer for the side to move: squares behind an enemy pawn that may
// have just advanced two ranks and has a pawn of the side to move beside it.
func CandidateEnPassantSquares(board *chess.Board, toMove chess.Colour) []chess.Coord {
	enemy := toMove.Opposite()
	dir := chess.PawnDirection(enemy)
	landing := chess.PawnRank(enemy) + 2*dir

	var targets []chess.Coord
	for file := 0; file < chess.BoardSize; file++ {
		pawnSq := chess.Sq(landing, file)
		if !board.At(pawnSq).Is(enemy, chess.Pawn) {
			continue
		}
		passed := chess.Sq(landing-dir, file)
		start := chess.Sq(landing-2*dir, file)
		if !board.At(passed).IsEmpty() || !board.At(start).IsEmpty() {
			continue
		}
		left := board.At(chess.Sq(landing, file-1))
		right := board.At(chess.Sq(landing, file+1))
		if left.Is(toMove, chess.Pawn) || right.Is(toMove, chess.Pawn) {
			targets = append(targets, passed)
		}
	}
	return targets
}

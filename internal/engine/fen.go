package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EmptyBoardFEN is the FEN string for a board with no pieces. It is a
// starting point for editing, not a loadable position.
const EmptyBoardFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// FEN field indexes.
const (
	fieldPlacement = iota
	fieldActive
	fieldCastling
	fieldEnPassant
	fieldHalfmove
	fieldFullmove
	fenFieldCount
)

// Encode converts a position to a FEN string. Castling rights are derived
// from the moved flags of kings and rooks on their home squares, and the en
// passant target from the last move.
func Encode(pos *Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos.Board)
	sb.WriteByte(' ')
	sb.WriteString(pos.ToMove.FENToken())
	sb.WriteByte(' ')
	sb.WriteString(castlingRights(pos.Board))
	sb.WriteByte(' ')
	sb.WriteString(enPassantTarget(pos.LastMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.MoveNumber))

	return sb.String()
}

// EncodePlacement returns only the piece placement field.
func EncodePlacement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, rank 8 first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Sq(rank, file))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// castlingRights derives the castling field from the board.
func castlingRights(board *chess.Board) string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []castleSide{kingside, queenside} {
			if hasCastlingRight(board, colour, side) {
				sb.WriteByte(castlingLetter(colour, side))
			}
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// hasCastlingRight reports whether the unmoved king and rook of a side
// still stand on their home squares.
func hasCastlingRight(board *chess.Board, colour chess.Colour, side castleSide) bool {
	home := chess.HomeRank(colour)
	king := board.At(chess.Sq(home, kingFile))
	if !king.Is(colour, chess.King) || king.Moved {
		return false
	}
	rookFrom, _ := castleRookSquares(home, side)
	rook := board.At(rookFrom)
	return rook.Is(colour, chess.Rook) && !rook.Moved
}

func castlingLetter(colour chess.Colour, side castleSide) byte {
	letter := byte('K')
	if side == queenside {
		letter = 'Q'
	}
	if colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// enPassantTarget returns the square passed over by a double pawn push, or "-".
func enPassantTarget(lastMove *chess.LastMove) string {
	if !lastMove.IsDoublePawnPush() {
		return "-"
	}
	return chess.Sq((lastMove.From.Rank+lastMove.To.Rank)/2, lastMove.From.File).String()
}

// RepetitionKey returns the part of a FEN string that identifies a position
// for repetition: placement, active colour, castling and en passant.
func RepetitionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > fieldHalfmove {
		fields = fields[:fieldHalfmove]
	}
	return strings.Join(fields, " ")
}

// Decode parses a FEN string into a position without checking that the
// position is playable; use LoadFEN for that. Moved flags are inferred:
// pawns off their starting rank have moved, and kings and rooks have moved
// unless the castling field grants a right they take part in. A last move
// is fabricated only when the en passant field names a square.
func Decode(fen string) (*Position, error) {
	fields, err := splitFields(fen)
	if err != nil {
		return nil, err
	}

	board, err := parsePlacement(fields[fieldPlacement])
	if err != nil {
		return nil, err
	}

	active, ok := chess.ParseColourToken(fields[fieldActive])
	if !ok {
		return nil, invalidFEN("active colour", fields[fieldActive], "player to move must be either 'w' or 'b'")
	}

	halfmove, err := parseCounter("halfmove clock", fields[fieldHalfmove])
	if err != nil {
		return nil, err
	}
	fullmove, err := parseCounter("fullmove number", fields[fieldFullmove])
	if err != nil {
		return nil, err
	}

	inferMovedFlags(board, fields[fieldCastling])

	lastMove, err := inferLastMove(fields[fieldEnPassant])
	if err != nil {
		return nil, err
	}

	return &Position{
		Board:         board,
		ToMove:        active,
		LastMove:      lastMove,
		HalfmoveClock: halfmove,
		MoveNumber:    fullmove,
	}, nil
}

// splitFields splits a FEN string into its six fields.
func splitFields(fen string) ([]string, error) {
	fields := strings.Fields(fen)
	if len(fields) != fenFieldCount {
		return nil, &errors.FENError{
			Err:    errors.ErrFENParse,
			Reason: "must have six space-separated fields: placement, active colour, castling, en passant, halfmove clock and fullmove number",
		}
	}
	return fields, nil
}

// parsePlacement parses the piece placement field into a board. Every rank
// must describe exactly eight squares.
func parsePlacement(placement string) (*chess.Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return nil, fenParse("placement", placement, "board must have 8 ranks separated by '/'")
	}

	board := chess.NewBoard()
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFEN(c)
			if !ok {
				return nil, fenParse("placement", placement, "invalid piece character "+strconv.QuoteRune(rune(c)))
			}
			if file < chess.BoardSize {
				board.Set(chess.Sq(rank, file), piece)
			}
			file++
		}
		if file != chess.BoardSize {
			return nil, fenParse("placement", row, "every rank must have exactly 8 squares")
		}
	}
	return board, nil
}

// parseCounter parses a non-negative clock field.
func parseCounter(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fenParse(field, value, "must be a number")
	}
	if n < 0 {
		return 0, invalidFEN(field, value, "must not be negative")
	}
	return n, nil
}

// inferMovedFlags sets moved flags that FEN does not record directly.
func inferMovedFlags(board *chess.Board, castling string) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		granted := map[castleSide]bool{
			kingside:  strings.IndexByte(castling, castlingLetter(colour, kingside)) >= 0,
			queenside: strings.IndexByte(castling, castlingLetter(colour, queenside)) >= 0,
		}
		home := chess.HomeRank(colour)
		kingHome := chess.Sq(home, kingFile)

		for _, placed := range board.Pieces(colour) {
			p := placed.Piece
			switch p.Kind {
			case chess.Pawn:
				p.Moved = placed.At.Rank != chess.PawnRank(colour)
			case chess.King:
				p.Moved = placed.At != kingHome || !(granted[kingside] || granted[queenside])
			case chess.Rook:
				p.Moved = true
				for side, ok := range granted {
					rookHome, _ := castleRookSquares(home, side)
					if ok && placed.At == rookHome {
						p.Moved = false
					}
				}
			}
			board.Set(placed.At, p)
		}
	}
}

// inferLastMove fabricates the double pawn push implied by an en passant target.
func inferLastMove(target string) (*chess.LastMove, error) {
	if target == "-" {
		return nil, nil
	}
	sq, err := chess.ParseSquare(target)
	if err != nil {
		return nil, invalidFEN("en passant", target, err.Error())
	}

	var pawn chess.Piece
	switch sq.Rank {
	case 2:
		pawn = chess.W(chess.Pawn)
	case 5:
		pawn = chess.B(chess.Pawn)
	default:
		return nil, invalidFEN("en passant", target, "target square must be on rank 3 or 6")
	}
	pawn.Moved = true

	dir := chess.PawnDirection(pawn.Colour)
	return &chess.LastMove{
		Piece: pawn,
		From:  chess.Sq(sq.Rank-dir, sq.File),
		To:    chess.Sq(sq.Rank+dir, sq.File),
		Types: chess.BasicMove,
	}, nil
}

func invalidFEN(field, value, reason string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value, Reason: reason}
}

func fenParse(field, value, reason string) error {
	return &errors.FENError{Err: errors.ErrFENParse, Field: field, Value: value, Reason: reason}
}

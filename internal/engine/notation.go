package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// sanInput is what notation needs to know about a move. Board and Safe
// describe the position before the move was made.
type sanInput struct {
	Board     *chess.Board
	Safe      chess.SafeSquares
	Piece     chess.Piece
	From      chess.Coord
	To        chess.Coord
	Promotion chess.PieceKind
	Types     chess.MoveType
}

// san renders a move in standard algebraic notation.
func san(in sanInput) string {
	var sb strings.Builder

	if in.Types.Has(chess.Castling) {
		if in.To.File > in.From.File {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		writeCheckSuffix(&sb, in.Types)
		return sb.String()
	}

	capture := in.Types.Has(chess.Capture)

	if in.Piece.Kind == chess.Pawn {
		if capture {
			sb.WriteByte(in.From.FileLetter())
		}
	} else {
		sb.WriteByte(in.Piece.Kind.Letter())
		sb.WriteString(disambiguation(in))
	}

	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(in.To.String())

	if in.Types.Has(chess.Promotion) {
		sb.WriteByte('=')
		sb.WriteByte(in.Promotion.Letter())
	}

	writeCheckSuffix(&sb, in.Types)
	return sb.String()
}

func writeCheckSuffix(sb *strings.Builder, types chess.MoveType) {
	switch {
	case types.Has(chess.CheckMate):
		sb.WriteByte('#')
	case types.Has(chess.Check):
		sb.WriteByte('+')
	}
}

// disambiguation returns the origin file, rank or both when another piece
// of the same kind and colour could also legally reach the destination.
// The mover and its rivals are compared as one group: the file is enough
// when every file in the group differs, then the rank, else both.
// Kings never need it.
func disambiguation(in sanInput) string {
	if in.Piece.Kind == chess.King {
		return ""
	}

	group := []chess.Coord{in.From}
	for _, placed := range in.Board.Pieces(in.Piece.Colour) {
		if placed.At == in.From || placed.Piece.Kind != in.Piece.Kind {
			continue
		}
		if in.Safe.Contains(placed.At, in.To) {
			group = append(group, placed.At)
		}
	}
	if len(group) == 1 {
		return ""
	}

	files := make(map[int]bool, len(group))
	ranks := make(map[int]bool, len(group))
	for _, c := range group {
		files[c.File] = true
		ranks[c.Rank] = true
	}

	switch {
	case len(files) == len(group):
		return string(in.From.FileLetter())
	case len(ranks) == len(group):
		return string(in.From.RankDigit())
	default:
		return in.From.String()
	}
}

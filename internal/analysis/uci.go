package analysis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ParseUCIMove parses a move in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func ParseUCIMove(s string) (chess.MoveRequest, error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.MoveRequest{}, errors.Wrapf(errors.ErrInvalidCoordinate, "move %q", s)
	}

	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.MoveRequest{}, errors.Wrapf(errors.ErrInvalidCoordinate, "move %q", s)
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.MoveRequest{}, errors.Wrapf(errors.ErrInvalidCoordinate, "move %q", s)
	}

	req := chess.MoveRequest{From: from, To: to}
	if len(s) == 5 {
		kind := chess.KindFromLetter(s[4])
		if !kind.IsPromotable() {
			return chess.MoveRequest{}, errors.Wrapf(errors.ErrInvalidPromotion, "move %q", s)
		}
		req.Promotion = kind
	}
	return req, nil
}

// FormatUCIMove formats a move request in UCI long algebraic form.
func FormatUCIMove(req chess.MoveRequest) string {
	return req.String()
}

// ParseMoveList parses space separated UCI moves.
func ParseMoveList(s string) ([]chess.MoveRequest, error) {
	fields := strings.Fields(s)
	moves := make([]chess.MoveRequest, 0, len(fields))
	for _, f := range fields {
		req, err := ParseUCIMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, req)
	}
	return moves, nil
}

// ParseBestMove parses a "bestmove e2e4 ponder e7e5" line. The ponder move
// is optional and nil when absent.
func ParseBestMove(line string) (chess.MoveRequest, *chess.MoveRequest, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "bestmove" {
		return chess.MoveRequest{}, nil, fmt.Errorf("%w: malformed best move %q", errors.ErrAnalysis, line)
	}
	if fields[1] == "(none)" {
		return chess.MoveRequest{}, nil, fmt.Errorf("%w: no move in a finished position", errors.ErrAnalysis)
	}

	best, err := ParseUCIMove(fields[1])
	if err != nil {
		return chess.MoveRequest{}, nil, fmt.Errorf("%w: %w", errors.ErrAnalysis, err)
	}

	if len(fields) >= 4 && fields[2] == "ponder" {
		ponder, err := ParseUCIMove(fields[3])
		if err != nil {
			return chess.MoveRequest{}, nil, fmt.Errorf("%w: %w", errors.ErrAnalysis, err)
		}
		return best, &ponder, nil
	}
	return best, nil, nil
}

// Info holds the fields of a UCI "info" line that matter for analysis.
// Scores are from the point of view of the side to move, as UCI reports them.
type Info struct {
	Depth    int
	Score    Evaluation
	HasScore bool
	PV       []chess.MoveRequest
}

// ParseInfo updates info from one UCI "info" line. Fields missing from the
// line, or with malformed values, leave info unchanged.
func ParseInfo(line string, info *Info) {
	fields := strings.Fields(line)
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				if d, err := strconv.Atoi(fields[i+1]); err == nil {
					info.Depth = d
				}
				i++
			}
		case "score":
			if i+2 < len(fields) {
				n, err := strconv.Atoi(fields[i+2])
				if err == nil {
					switch fields[i+1] {
					case "cp":
						info.Score, info.HasScore = Centipawns(n), true
					case "mate":
						info.Score, info.HasScore = MateIn(n), true
					}
				}
				i += 2
			}
		case "pv":
			var pv []chess.MoveRequest
			for _, f := range fields[i+1:] {
				req, err := ParseUCIMove(f)
				if err != nil {
					break
				}
				pv = append(pv, req)
			}
			if len(pv) > 0 {
				info.PV = pv
			}
			return
		}
	}
}

// ParseEngineOutput reads raw UCI engine output up to the "bestmove" line.
// toMove is the side to move in the searched position, used to turn the
// engine's relative score into one from White's point of view.
func ParseEngineOutput(r io.Reader, toMove chess.Colour) (*Analysis, error) {
	var info Info
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "info "):
			ParseInfo(line, &info)
		case strings.HasPrefix(line, "bestmove"):
			best, ponder, err := ParseBestMove(line)
			if err != nil {
				return nil, err
			}
			a := &Analysis{
				BestMove:     best,
				Ponder:       ponder,
				Continuation: info.PV,
				Evaluation:   info.Score,
				Depth:        info.Depth,
			}
			if len(a.Continuation) == 0 || a.Continuation[0] != best {
				a.Continuation = []chess.MoveRequest{best}
			}
			if toMove == chess.Black {
				a.Evaluation = a.Evaluation.negate()
			}
			return a, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrAnalysis, err)
	}
	return nil, fmt.Errorf("%w: engine output has no best move", errors.ErrAnalysis)
}

func (e Evaluation) negate() Evaluation {
	if e.isMate {
		return MateIn(-e.mate)
	}
	return Centipawns(-e.centipawns)
}

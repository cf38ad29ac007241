package analysis

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Response is the move-search service's JSON reply. Evaluation is in pawns
// from White's point of view; Mate is set instead when a mate was found.
type Response struct {
	Success      bool     `json:"success"`
	Error        string   `json:"error,omitempty"`
	Evaluation   *float64 `json:"evaluation"`
	Mate         *int     `json:"mate"`
	BestMove     string   `json:"bestmove"`
	Continuation string   `json:"continuation"`
}

// Analysis is a decoded suggestion for one position.
type Analysis struct {
	BestMove     chess.MoveRequest
	Ponder       *chess.MoveRequest
	Continuation []chess.MoveRequest
	Evaluation   Evaluation
	Depth        int
}

// ParseResponse decodes a JSON reply.
func ParseResponse(data []byte) (*Analysis, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", errors.ErrAnalysis, err)
	}
	return resp.Analysis()
}

// DecodeResponse decodes a JSON reply from r.
func DecodeResponse(r io.Reader) (*Analysis, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", errors.ErrAnalysis, err)
	}
	return resp.Analysis()
}

// Analysis converts a successful reply into coordinate moves and an evaluation.
func (r *Response) Analysis() (*Analysis, error) {
	if !r.Success {
		msg := r.Error
		if msg == "" {
			msg = "unsuccessful response"
		}
		return nil, fmt.Errorf("%w: %s", errors.ErrAnalysis, msg)
	}

	best, ponder, err := ParseBestMove(r.BestMove)
	if err != nil {
		return nil, err
	}

	continuation, err := ParseMoveList(r.Continuation)
	if err != nil {
		return nil, fmt.Errorf("%w: continuation: %w", errors.ErrAnalysis, err)
	}

	return &Analysis{
		BestMove:     best,
		Ponder:       ponder,
		Continuation: continuation,
		Evaluation:   r.evaluation(),
	}, nil
}

// evaluation prefers a mate score; with neither field set the position is even.
func (r *Response) evaluation() Evaluation {
	switch {
	case r.Mate != nil:
		return MateIn(*r.Mate)
	case r.Evaluation != nil:
		return Pawns(*r.Evaluation)
	default:
		return Evaluation{}
	}
}

package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		wantBest         string
		wantPonder       string
		wantContinuation []string
		wantEval         string
	}{
		{
			name:             "centipawn score",
			body:             `{"success":true,"evaluation":0.45,"mate":null,"bestmove":"bestmove e2e4 ponder e7e5","continuation":"e2e4 e7e5 g1f3"}`,
			wantBest:         "e2e4",
			wantPonder:       "e7e5",
			wantContinuation: []string{"e2e4", "e7e5", "g1f3"},
			wantEval:         "+0.45",
		},
		{
			name:             "mate score",
			body:             `{"success":true,"evaluation":null,"mate":-2,"bestmove":"bestmove d8h4","continuation":"d8h4"}`,
			wantBest:         "d8h4",
			wantContinuation: []string{"d8h4"},
			wantEval:         "-M2",
		},
		{
			name:             "no score",
			body:             `{"success":true,"evaluation":null,"mate":null,"bestmove":"bestmove a7a8n","continuation":"a7a8n"}`,
			wantBest:         "a7a8n",
			wantContinuation: []string{"a7a8n"},
			wantEval:         "+0.00",
		},
		{
			name:             "both scores prefer mate",
			body:             `{"success":true,"evaluation":12.5,"mate":4,"bestmove":"bestmove h5f7","continuation":""}`,
			wantBest:         "h5f7",
			wantContinuation: []string{},
			wantEval:         "+M4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseResponse([]byte(tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantBest, a.BestMove.String())
			if tt.wantPonder == "" {
				assert.Nil(t, a.Ponder)
			} else {
				require.NotNil(t, a.Ponder)
				assert.Equal(t, tt.wantPonder, a.Ponder.String())
			}

			got := make([]string, 0, len(a.Continuation))
			for _, m := range a.Continuation {
				got = append(got, FormatUCIMove(m))
			}
			assert.Equal(t, tt.wantContinuation, got)
			assert.Equal(t, tt.wantEval, a.Evaluation.String())
		})
	}
}

func TestParseResponse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{"service error", `{"success":false,"error":"Invalid FEN"}`, chesserrors.ErrAnalysis, "Invalid FEN"},
		{"unsuccessful without message", `{"success":false}`, chesserrors.ErrAnalysis, "unsuccessful"},
		{"not json", `<html>`, chesserrors.ErrAnalysis, "decode response"},
		{"bad best move", `{"success":true,"bestmove":"bestmove e9e4","continuation":""}`, chesserrors.ErrInvalidCoordinate, "e9e4"},
		{"bad continuation", `{"success":true,"bestmove":"bestmove e2e4","continuation":"e2e4 e7e8k"}`, chesserrors.ErrInvalidPromotion, "continuation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseResponse([]byte(tt.body))
			assert.Nil(t, a)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, chesserrors.ErrAnalysis)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeResponse(t *testing.T) {
	body := `{"success": true, "evaluation": -1.5, "mate": null,
		"bestmove": "bestmove c7c5 ponder g1f3", "continuation": "c7c5 g1f3 d7d6"}`

	a, err := DecodeResponse(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, chess.MoveRequest{From: chess.Sq(6, 2), To: chess.Sq(4, 2)}, a.BestMove)
	assert.Equal(t, "-1.50", a.Evaluation.String())
	assert.Len(t, a.Continuation, 3)

	_, err = DecodeResponse(strings.NewReader(""))
	assert.ErrorIs(t, err, chesserrors.ErrAnalysis)
}

package analysis

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func requests(t *testing.T, moves ...string) []chess.MoveRequest {
	t.Helper()
	reqs := make([]chess.MoveRequest, len(moves))
	for i, m := range moves {
		reqs[i] = testutil.Request(t, m)
	}
	return reqs
}

func TestPreviewLine_FromInitialPosition(t *testing.T) {
	p, err := PreviewLine(engine.InitialFEN, requests(t, testutil.RuyLopezMoves...))
	testutil.AssertNoError(t, err)

	testutil.AssertFEN(t, p.StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, len(p.Plies), 5)
	testutil.AssertEqual(t, len(p.History), 6, "initial snapshot plus one per ply")
	testutil.AssertEqual(t, p.Outcome, "")

	fens := p.FENs()
	testutil.AssertFEN(t, fens[len(fens)-1], testutil.RuyLopezFEN)

	testutil.AssertEqual(t, p.Plies[0], PreviewPly{
		Number: 1,
		Colour: chess.White,
		Move:   testutil.Request(t, "e2e4"),
		SAN:    "e4",
		FEN:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	})
	testutil.AssertEqual(t, p.Plies[4].SAN, "Bb5")
	testutil.AssertEqual(t, p.Moves, []game.MovePair{
		{Number: 1, White: "e4", Black: "e5"},
		{Number: 2, White: "Nf3", Black: "Nc6"},
		{Number: 3, White: "Bb5"},
	})
}

func TestPreviewLine_BlackToMove(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	p, err := PreviewLine(fen, requests(t, "e7e5", "g1f3"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, p.Plies[0].Colour, chess.Black)
	testutil.AssertEqual(t, p.Plies[0].Number, 1)
	testutil.AssertEqual(t, p.Plies[1].Number, 2)
	testutil.AssertEqual(t, p.Moves, []game.MovePair{
		{Number: 1, Black: "e5"},
		{Number: 2, White: "Nf3"},
	})
	testutil.AssertEqual(t, p.Moves[0].String(), "1... e5")
}

func TestPreviewLine_StopsAtGameEnd(t *testing.T) {
	// Fool's mate followed by moves that can never be played.
	p, err := PreviewLine(engine.InitialFEN, requests(t, "f2f3", "e7e5", "g2g4", "d8h4", "a2a3", "a7a6"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(p.Plies), 4)
	testutil.AssertEqual(t, p.Plies[3].SAN, "Qh4#")
	testutil.AssertEqual(t, p.Outcome, "Black won by checkmate")
}

func TestPreviewLine_Errors(t *testing.T) {
	_, err := PreviewLine(engine.InitialFEN, requests(t, "e2e4", "e2e4"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrAnalysis)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "ply 2")

	_, err = PreviewLine("not a fen", nil)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
}

func TestPreviewLine_AfterQuietMoves(t *testing.T) {
	g := testutil.MustPlayGame(t, engine.InitialFEN, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3")

	p, err := PreviewLine(g.BoardAsFEN(), nil)
	testutil.AssertNoError(t, err)
	testutil.AssertFEN(t, p.StartFEN, "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 5 3")

	p, err = PreviewLine(g.BoardAsFEN(), requests(t, "g8f6", "f3g1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(p.Plies), 2)
	testutil.AssertEqual(t, p.Moves, []game.MovePair{
		{Number: 3, Black: "Nf6"},
		{Number: 4, White: "Ng1"},
	})
	testutil.AssertFEN(t, p.FENs()[1], "rnbqkb1r/pppppppp/5n2/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 7 4")

	testutil.AssertNoError(t, p.PlayTo(g, 2))
	testutil.AssertFEN(t, g.BoardAsFEN(), p.FENs()[1])
}

func TestPreviewLine_FinishedGame(t *testing.T) {
	g := testutil.MustPlayGame(t, engine.InitialFEN, testutil.ScholarsMateMoves...)

	p, err := PreviewLine(g.BoardAsFEN(), requests(t, "a7a6"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(p.Plies), 0)
	testutil.AssertEqual(t, p.Outcome, g.GameOverMessage())
}

func TestPreviewLine_Empty(t *testing.T) {
	p, err := PreviewLine(engine.InitialFEN, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(p.Plies), 0)
	testutil.AssertEqual(t, len(p.History), 1)
	testutil.AssertEqual(t, len(p.FENs()), 0)
}

func TestPreview_PlayTo(t *testing.T) {
	p, err := PreviewLine(engine.InitialFEN, requests(t, testutil.RuyLopezMoves...))
	testutil.AssertNoError(t, err)

	tests := []struct {
		name    string
		n       int
		wantFEN string
		plies   int
	}{
		{"none", 0, engine.InitialFEN, 0},
		{"negative", -3, engine.InitialFEN, 0},
		{"partial", 3, p.Plies[2].FEN, 3},
		{"whole line", 5, testutil.RuyLopezFEN, 5},
		{"past the end", 99, testutil.RuyLopezFEN, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustNewGame(t, "")
			testutil.AssertNoError(t, p.PlayTo(g, tt.n))
			testutil.AssertFEN(t, g.BoardAsFEN(), tt.wantFEN)
			testutil.AssertEqual(t, g.Plies(), tt.plies)
		})
	}
}

func TestPreview_PlayToWrongGame(t *testing.T) {
	p, err := PreviewLine(engine.InitialFEN, requests(t, "e2e4"))
	testutil.AssertNoError(t, err)

	g := testutil.MustPlayGame(t, "", "d2d4")
	err = p.PlayTo(g, 1)
	testutil.AssertErrorIs(t, err, chesserrors.ErrAnalysis)
	testutil.AssertContains(t, err.Error(), "e4")
}

// analysis.go - Previewing move-search replies and computer moves
package main

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// runAnalysis reads a reply for the current position of g, previews its
// line and, when a computer opponent is to move, plays the best move.
func runAnalysis(g *game.Game, cfg *config.Config, log zerolog.Logger, opts options, stdin io.Reader) error {
	a, err := readAnalysis(g, opts, stdin)
	if err != nil {
		return err
	}

	p, err := analysis.PreviewLine(g.BoardAsFEN(), a.Continuation)
	if err != nil {
		return err
	}
	log.Info().
		Str("bestmove", a.BestMove.String()).
		Str("evaluation", a.Evaluation.String()).
		Int("plies", len(p.Plies)).
		Msg("line previewed")

	if cfg.Output.Format == config.JSON {
		err = output.OutputPreviewJSON(a, p, cfg)
	} else {
		output.OutputPreview(a, p, cfg)
	}
	if err != nil {
		return err
	}

	o, ok, err := cfg.Analysis.Opponent()
	if err != nil || !ok || !o.ToMove(g) {
		return err
	}
	if err := o.Play(g, a); err != nil {
		return err
	}
	log.Info().Str("colour", o.Colour.String()).Str("move", a.BestMove.String()).Msg("computer moved")
	return writeGame(g, cfg)
}

func readAnalysis(g *game.Game, opts options, stdin io.Reader) (*analysis.Analysis, error) {
	in, err := openInput(opts.analysis, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	if opts.uci {
		return analysis.ParseEngineOutput(in, g.ActiveColour())
	}
	return analysis.DecodeResponse(in)
}

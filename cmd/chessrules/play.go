// play.go - Playing moves and writing the resulting game
package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// playGame starts from the configured position and plays moves followed by
// every positional argument, each a space separated list of UCI moves.
func playGame(cfg *config.Config, log zerolog.Logger, moves string, args []string) (*game.Game, error) {
	g, err := game.NewFromFEN(cfg.StartFEN(), game.WithLogger(log))
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}

	reqs, err := analysis.ParseMoveList(strings.Join(append([]string{moves}, args...), " "))
	if err != nil {
		return nil, err
	}

	for i, req := range reqs {
		if err := g.Apply(req); err != nil {
			return nil, errors.Wrapf(err, "move %d (%s)", i+1, req)
		}
	}

	log.Info().
		Str("game", g.ID().String()).
		Int("plies", g.Plies()).
		Str("fen", g.BoardAsFEN()).
		Bool("over", g.IsGameOver()).
		Msg("game played")
	return g, nil
}

// writeGame prints g in the configured format.
func writeGame(g *game.Game, cfg *config.Config) error {
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(g); err != nil {
		return err
	}
	return w.Close()
}

// writeQuery prints the move-search query for the current position.
func writeQuery(g *game.Game, cfg *config.Config) error {
	q, err := analysis.NewQuery(g.BoardAsFEN(), cfg.Analysis.Level)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cfg.OutputFile, q.Values().Encode())
	return err
}

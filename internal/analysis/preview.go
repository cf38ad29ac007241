package analysis

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// PreviewPly is one move of a previewed line.
type PreviewPly struct {
	Number int
	Colour chess.Colour
	Move   chess.MoveRequest
	SAN    string
	FEN    string
}

// Preview is a suggested line replayed from a starting position.
type Preview struct {
	StartFEN string
	Plies    []PreviewPly
	Moves    []game.MovePair
	History  []game.Snapshot
	Outcome  string
}

// PreviewLine replays continuation from fen on a scratch game. fen is
// usually BoardAsFEN of a live game, so its clocks are not held to the
// limits of a loaded position. The line stops early without error if the
// game ends; an illegal move is an error.
func PreviewLine(fen string, continuation []chess.MoveRequest) (*Preview, error) {
	g, err := game.Resume(fen)
	if err != nil {
		return nil, err
	}

	p := &Preview{StartFEN: g.BoardAsFEN()}
	for i, req := range continuation {
		if g.IsGameOver() {
			break
		}
		number, colour := g.MoveNumber(), g.ActiveColour()
		if err := g.Apply(req); err != nil {
			return nil, fmt.Errorf("%w: ply %d (%s): %w", errors.ErrAnalysis, i+1, req, err)
		}
		sans := g.SANMoves()
		p.Plies = append(p.Plies, PreviewPly{
			Number: number,
			Colour: colour,
			Move:   req,
			SAN:    sans[len(sans)-1],
			FEN:    g.BoardAsFEN(),
		})
	}

	p.Moves = g.MoveList()
	p.History = g.History()
	p.Outcome = g.GameOverMessage()
	return p, nil
}

// FENs returns the position after each ply of the line.
func (p *Preview) FENs() []string {
	fens := make([]string, len(p.Plies))
	for i, ply := range p.Plies {
		fens[i] = ply.FEN
	}
	return fens
}

// PlayTo applies the first n moves of the line to g, as when a player
// clicks a move of the preview. n is clamped to the line length.
func (p *Preview) PlayTo(g *game.Game, n int) error {
	if n > len(p.Plies) {
		n = len(p.Plies)
	}
	for _, ply := range p.Plies[:max(n, 0)] {
		if err := g.Apply(ply.Move); err != nil {
			return fmt.Errorf("%w: %s: %w", errors.ErrAnalysis, ply.SAN, err)
		}
	}
	return nil
}

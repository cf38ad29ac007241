package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Snapshot is an immutable record of the position after a move, or of the
// initial position at index 0.
type Snapshot struct {
	Board    chess.View
	LastMove *chess.LastMove
	Check    chess.CheckState
	FEN      string
}

// MovePair is one full move of the move list. White is empty when the game
// started with Black to move; Black is empty while Black has yet to reply.
type MovePair struct {
	Number int
	White  string
	Black  string
}

// String renders the pair as movetext, e.g. "12. Nf3 Nc6" or "12... Nc6".
func (p MovePair) String() string {
	switch {
	case p.White == "":
		return fmt.Sprintf("%d... %s", p.Number, p.Black)
	case p.Black == "":
		return fmt.Sprintf("%d. %s", p.Number, p.White)
	default:
		return fmt.Sprintf("%d. %s %s", p.Number, p.White, p.Black)
	}
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Board:    g.pos.Board.View(),
		LastMove: g.LastMove(),
		Check:    g.check,
		FEN:      g.fen,
	}
}

// recordMove adds san to the move list for the given mover and move number.
func (g *Game) recordMove(mover chess.Colour, number int, san string) {
	if mover == chess.White {
		g.moves = append(g.moves, MovePair{Number: number, White: san})
		return
	}
	if n := len(g.moves); n > 0 && g.moves[n-1].Number == number && g.moves[n-1].Black == "" {
		g.moves[n-1].Black = san
		return
	}
	g.moves = append(g.moves, MovePair{Number: number, Black: san})
}

// History returns every snapshot, index 0 being the initial or loaded position.
func (g *Game) History() []Snapshot {
	out := make([]Snapshot, len(g.history))
	copy(out, g.history)
	return out
}

// Snapshot returns the i-th history entry.
func (g *Game) Snapshot(i int) (Snapshot, bool) {
	if i < 0 || i >= len(g.history) {
		return Snapshot{}, false
	}
	return g.history[i], true
}

// Plies returns the number of moves played since the initial or loaded position.
func (g *Game) Plies() int {
	return len(g.history) - 1
}

// MoveList returns the notation of every move played, one pair per full move.
func (g *Game) MoveList() []MovePair {
	out := make([]MovePair, len(g.moves))
	copy(out, g.moves)
	return out
}

// SANMoves returns the notation of every move in play order.
func (g *Game) SANMoves() []string {
	var sans []string
	for _, p := range g.moves {
		if p.White != "" {
			sans = append(sans, p.White)
		}
		if p.Black != "" {
			sans = append(sans, p.Black)
		}
	}
	return sans
}

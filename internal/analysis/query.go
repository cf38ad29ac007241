package analysis

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Strength levels offered to players and the search depth each one asks for.
const (
	MinLevel = 1
	MaxLevel = 5
)

var levelDepths = map[int]int{
	1: 10,
	2: 11,
	3: 12,
	4: 13,
	5: 15,
}

// DepthForLevel returns the search depth for a strength level.
func DepthForLevel(level int) (int, error) {
	depth, ok := levelDepths[level]
	if !ok {
		return 0, fmt.Errorf("%w: level %d outside %d..%d", errors.ErrInvalidConfig, level, MinLevel, MaxLevel)
	}
	return depth, nil
}

// Query is what the move-search service is asked: a position and a depth.
type Query struct {
	FEN   string
	Depth int
}

// NewQuery checks fen and level and builds a query. fen must describe a
// sound board but may carry any clock values, as positions reached in play do.
func NewQuery(fen string, level int) (Query, error) {
	if _, err := engine.ResumeFEN(fen); err != nil {
		return Query{}, err
	}
	depth, err := DepthForLevel(level)
	if err != nil {
		return Query{}, err
	}
	return Query{FEN: fen, Depth: depth}, nil
}

// Values returns the query as URL parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("fen", q.FEN)
	v.Set("depth", strconv.Itoa(q.Depth))
	return v
}

// Opponent is a computer player driven by the move-search service.
type Opponent struct {
	Colour chess.Colour
	Level  int
}

// NewOpponent returns a computer opponent for a human playing the given colour.
func NewOpponent(human chess.Colour, level int) (Opponent, error) {
	if _, err := DepthForLevel(level); err != nil {
		return Opponent{}, err
	}
	return Opponent{Colour: human.Opposite(), Level: level}, nil
}

// ToMove reports whether the computer should move next in g.
func (o Opponent) ToMove(g *game.Game) bool {
	return !g.IsGameOver() && g.ActiveColour() == o.Colour
}

// Query builds the service query for the current position of g.
func (o Opponent) Query(g *game.Game) (Query, error) {
	return NewQuery(g.BoardAsFEN(), o.Level)
}

// Play applies the suggested best move to g. It fails when the computer is
// not to move or the suggestion is illegal, leaving g unchanged.
func (o Opponent) Play(g *game.Game, a *Analysis) error {
	if !o.ToMove(g) {
		return fmt.Errorf("%w: %s is not to move", errors.ErrAnalysis, o.Colour)
	}
	if err := g.Apply(a.BestMove); err != nil {
		return fmt.Errorf("%w: best move %s: %w", errors.ErrAnalysis, a.BestMove, err)
	}
	return nil
}

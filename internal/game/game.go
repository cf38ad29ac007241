// Package game provides the chess game controller: a single mutable game
// that accepts coordinate moves, keeps its history and move list, and
// reports check, legal moves and game over state after every change.
//
// A Game is not safe for concurrent use. Callers serialize access.
package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// repetitionLimit is the occurrence count that draws by repetition.
const repetitionLimit = 3

// Game is the public façade over the rules engine.
type Game struct {
	id  uuid.UUID
	log zerolog.Logger

	pos   *engine.Position
	safe  chess.SafeSquares
	check chess.CheckState
	fen   string

	history     []Snapshot
	moves       []MovePair
	repetitions *hashing.RepetitionTable
	threefold   bool
	outcome     engine.Outcome
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and load events.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// WithID sets the game identifier instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

// New creates a game at the standard starting position.
func New(opts ...Option) *Game {
	g := newGame(opts)
	g.reset(engine.NewPosition())
	return g
}

// NewFromFEN creates a game from a FEN string, which must pass full validation.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.LoadFEN(fen)
	if err != nil {
		return nil, err
	}
	g := newGame(opts)
	g.reset(pos)
	return g, nil
}

// Resume creates a game from a FEN written for a position reached in play,
// such as BoardAsFEN of another game. Unlike NewFromFEN it accepts any
// clock values and positions where the game is already over.
func Resume(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.ResumeFEN(fen)
	if err != nil {
		return nil, err
	}
	g := newGame(opts)
	g.reset(pos)
	return g, nil
}

func newGame(opts []Option) *Game {
	g := &Game{
		id:          uuid.New(),
		log:         zerolog.Nop(),
		repetitions: hashing.NewRepetitionTable(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With().Str("game", g.id.String()).Logger()
	return g
}

// reset makes pos the current position and starts a fresh history from it.
func (g *Game) reset(pos *engine.Position) {
	g.pos = pos
	g.safe = pos.SafeSquares()
	g.check = pos.CheckState()
	g.fen = engine.Encode(pos)
	g.history = []Snapshot{g.snapshot()}
	g.moves = nil
	g.repetitions.Reset()
	g.repetitions.Record(engine.RepetitionKey(g.fen))
	g.threefold = false
	g.updateOutcome()
}

// Move plays the piece on from to to. promotion may be chess.Empty, in
// which case a pawn reaching the last rank becomes a queen.
func (g *Game) Move(from, to chess.Coord, promotion chess.PieceKind) error {
	return g.Apply(chess.MoveRequest{From: from, To: to, Promotion: promotion})
}

// Apply plays a move request. On error the game is unchanged.
func (g *Game) Apply(req chess.MoveRequest) error {
	if g.outcome.Over() {
		return errors.Wrap(errors.ErrGameOver, g.outcome.Message())
	}

	mover := g.pos.ToMove
	moveNumber := g.pos.MoveNumber

	result, err := engine.ApplyMove(g.pos, g.safe, req)
	if err != nil {
		g.log.Debug().Err(err).Str("move", req.String()).Msg("move rejected")
		return err
	}

	g.safe = result.SafeSquares
	g.check = result.CheckState
	g.fen = engine.Encode(g.pos)
	g.recordMove(mover, moveNumber, result.SAN)
	g.history = append(g.history, g.snapshot())

	if g.repetitions.Record(engine.RepetitionKey(g.fen)) >= repetitionLimit {
		g.threefold = true
	}
	g.updateOutcome()

	g.log.Debug().
		Str("move", req.String()).
		Str("san", result.SAN).
		Str("fen", g.fen).
		Msg("move played")
	return nil
}

// LoadFEN replaces the game with the position described by fen. On error
// the game is unchanged; on success history restarts with one snapshot.
func (g *Game) LoadFEN(fen string) error {
	pos, err := engine.LoadFEN(fen)
	if err != nil {
		g.log.Debug().Err(err).Str("fen", fen).Msg("load rejected")
		return err
	}
	g.reset(pos)
	g.log.Debug().Str("fen", g.fen).Msg("position loaded")
	return nil
}

func (g *Game) updateOutcome() {
	g.outcome = engine.Evaluate(g.pos, g.safe, g.check, g.threefold)
	if g.outcome.Over() {
		g.log.Info().
			Str("reason", g.outcome.Reason.String()).
			Str("result", g.outcome.Result()).
			Msg(g.outcome.Message())
	}
}

// ID returns the game identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// SafeSquares returns the legal moves of the side to move.
func (g *Game) SafeSquares() chess.SafeSquares {
	return g.safe
}

// CheckState reports whether the side to move is in check.
func (g *Game) CheckState() chess.CheckState {
	return g.check
}

// LastMove returns the most recent move, or nil before any move. After a
// FEN load with an en passant target it is the inferred double push.
func (g *Game) LastMove() *chess.LastMove {
	if g.pos.LastMove == nil {
		return nil
	}
	lm := *g.pos.LastMove
	return &lm
}

// ActiveColour returns the side to move.
func (g *Game) ActiveColour() chess.Colour {
	return g.pos.ToMove
}

// Board returns a read-only view of the current board.
func (g *Game) Board() chess.View {
	return g.pos.Board.View()
}

// BoardAsFEN returns the current position as a FEN string.
func (g *Game) BoardAsFEN() string {
	return g.fen
}

// IsGameOver reports whether the game has ended.
func (g *Game) IsGameOver() bool {
	return g.outcome.Over()
}

// GameOverMessage describes how the game ended, or "" while it goes on.
func (g *Game) GameOverMessage() string {
	return g.outcome.Message()
}

// Outcome returns the termination state of the game.
func (g *Game) Outcome() engine.Outcome {
	return g.outcome
}

// IsThreefoldRepetition reports whether any position has occurred three times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.threefold
}

// FiftyMoveCounter returns the fifty-move counter in full moves.
func (g *Game) FiftyMoveCounter() float64 {
	return g.pos.FiftyMoveCounter()
}

// MoveNumber returns the full move number.
func (g *Game) MoveNumber() int {
	return g.pos.MoveNumber
}

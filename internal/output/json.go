package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID               string     `json:"id"`
	InitialFEN       string     `json:"initialFEN"`
	FinalFEN         string     `json:"finalFEN"`
	Moves            []JSONMove `json:"moves"`
	PlyCount         int        `json:"plyCount"`
	Result           string     `json:"result"`
	Over             bool       `json:"over"`
	Outcome          string     `json:"outcome,omitempty"`
	Check            string     `json:"check,omitempty"`
	FiftyMoveCounter float64    `json:"fiftyMoveCounter"`
	Threefold        bool       `json:"threefold,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Promotion  string `json:"promotion,omitempty"`
	Types      string `json:"types"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// JSONPreview represents an engine suggestion and the line it leads to.
type JSONPreview struct {
	StartFEN   string     `json:"startFEN"`
	BestMove   string     `json:"bestMove"`
	Ponder     string     `json:"ponder,omitempty"`
	Evaluation string     `json:"evaluation"`
	Bar        float64    `json:"bar"`
	Depth      int        `json:"depth,omitempty"`
	Moves      []JSONMove `json:"moves"`
	Outcome    string     `json:"outcome,omitempty"`
}

// OutputGameJSON outputs a single game in JSON format.
func OutputGameJSON(g *game.Game, cfg *config.Config) error {
	return encodeJSON(cfg.OutputFile, GameToJSON(g, cfg))
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(games []*game.Game, cfg *config.Config, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, g := range games {
		jsonGames[i] = GameToJSON(g, cfg)
	}
	return encodeJSON(w, &JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	history := g.History()
	outcome := g.Outcome()

	jg := &JSONGame{
		ID:               g.ID().String(),
		InitialFEN:       history[0].FEN,
		FinalFEN:         g.BoardAsFEN(),
		Moves:            convertMoveList(g.MoveList(), history, cfg.Output.History),
		PlyCount:         g.Plies(),
		Result:           outcome.Result(),
		Over:             outcome.Over(),
		FiftyMoveCounter: g.FiftyMoveCounter(),
		Threefold:        g.IsThreefoldRepetition(),
	}
	if outcome.Over() {
		jg.Outcome = outcome.Message()
	}
	if king, ok := g.CheckState().King(); ok {
		jg.Check = king.String()
	}
	return jg
}

// PreviewToJSON converts an engine suggestion and its replayed line.
func PreviewToJSON(a *analysis.Analysis, p *analysis.Preview) *JSONPreview {
	jp := &JSONPreview{
		StartFEN:   p.StartFEN,
		BestMove:   analysis.FormatUCIMove(a.BestMove),
		Evaluation: a.Evaluation.String(),
		Bar:        a.Evaluation.BarPercentage(),
		Depth:      a.Depth,
		Moves:      convertMoveList(p.Moves, p.History, true),
		Outcome:    p.Outcome,
	}
	if a.Ponder != nil {
		jp.Ponder = analysis.FormatUCIMove(*a.Ponder)
	}
	return jp
}

// convertMoveList pairs each played move with the snapshot taken after it.
// history[0] is the starting position, so ply i is described by history[i+1].
func convertMoveList(pairs []game.MovePair, history []game.Snapshot, includeFEN bool) []JSONMove {
	plies := flatten(pairs)
	result := make([]JSONMove, 0, len(plies))
	for i, p := range plies {
		if i+1 >= len(history) {
			break
		}
		snap := history[i+1]
		jm := JSONMove{
			MoveNumber: p.number,
			Color:      colorName(p.colour),
			SAN:        p.san,
		}
		if m := snap.LastMove; m != nil {
			jm.UCI = chess.MoveRequest{From: m.From, To: m.To, Promotion: m.Promotion}.String()
			jm.From = m.From.String()
			jm.To = m.To.String()
			jm.Piece = pieceTypeName(m.Piece.Kind)
			jm.Promotion = pieceTypeName(m.Promotion)
			jm.Types = m.Types.String()
		}
		if includeFEN {
			jm.FEN = snap.FEN
		}
		result = append(result, jm)
	}
	return result
}

type ply struct {
	number int
	colour chess.Colour
	san    string
}

// flatten turns move pairs back into plies in play order.
func flatten(pairs []game.MovePair) []ply {
	plies := make([]ply, 0, 2*len(pairs))
	for _, p := range pairs {
		if p.White != "" {
			plies = append(plies, ply{number: p.Number, colour: chess.White, san: p.White})
		}
		if p.Black != "" {
			plies = append(plies, ply{number: p.Number, colour: chess.Black, san: p.Black})
		}
	}
	return plies
}

// OutputPreviewJSON writes a previewed line as JSON to the configured output.
func OutputPreviewJSON(a *analysis.Analysis, p *analysis.Preview, cfg *config.Config) error {
	return encodeJSON(cfg.OutputFile, PreviewToJSON(a, p))
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece type as a string, empty for chess.Empty.
func pieceTypeName(k chess.PieceKind) string {
	if k == chess.Empty {
		return ""
	}
	return strings.ToLower(k.String())
}

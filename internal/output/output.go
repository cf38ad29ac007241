// Package output provides text and JSON rendering of games for the command line.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A non-positive maxLineLength
// disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame outputs a game as tags, movetext and a summary of the final position.
func OutputGame(g *game.Game, cfg *config.Config) {
	writeGameText(g, &cfg.Output, cfg.OutputFile)
}

func writeGameText(g *game.Game, cfg *config.OutputConfig, w io.Writer) {
	outputTags(g, w)
	fmt.Fprintln(w)

	outputMoves(g.MoveList(), g.Outcome().Result(), cfg, w)
	fmt.Fprintln(w)

	outputSummary(g, cfg, w)
}

// outputTags outputs the tags describing the game.
func outputTags(g *game.Game, w io.Writer) {
	fmt.Fprintf(w, "[Result \"%s\"]\n", g.Outcome().Result())
	if start := g.History()[0].FEN; start != engine.InitialFEN {
		fmt.Fprintf(w, "[SetUp \"1\"]\n")
		fmt.Fprintf(w, "[FEN \"%s\"]\n", escapeTagValue(start))
	}
	if g.Plies() > 0 {
		fmt.Fprintf(w, "[PlyCount \"%d\"]\n", g.Plies())
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves outputs the move list as wrapped movetext.
func outputMoves(pairs []game.MovePair, result string, cfg *config.OutputConfig, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))

	for _, p := range pairs {
		if p.White != "" {
			if cfg.KeepMoveNumbers {
				ow.Write(fmt.Sprintf("%d.", p.Number))
			}
			ow.Write(p.White)
		}
		if p.Black != "" {
			if cfg.KeepMoveNumbers && p.White == "" {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", p.Number))
			}
			ow.Write(p.Black)
		}
	}

	if cfg.KeepResult {
		ow.Write(result)
	}

	ow.NewLine()
}

// outputSummary outputs the final position, the outcome and, if requested,
// the position after every ply.
func outputSummary(g *game.Game, cfg *config.OutputConfig, w io.Writer) {
	if cfg.History {
		sans := g.SANMoves()
		for i, snap := range g.History() {
			label := "start"
			if i > 0 {
				label = sans[i-1]
			}
			fmt.Fprintf(w, "%-8s %s\n", label, snap.FEN)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "FEN: %s\n", g.BoardAsFEN())
	if king, ok := g.CheckState().King(); ok {
		fmt.Fprintf(w, "Check: king on %s\n", king)
	}
	if g.IsGameOver() {
		fmt.Fprintf(w, "Outcome: %s\n", g.GameOverMessage())
	}
}

// OutputPreview outputs an engine suggestion and the line it leads to.
func OutputPreview(a *analysis.Analysis, p *analysis.Preview, cfg *config.Config) {
	w := cfg.OutputFile

	fmt.Fprintf(w, "Best move: %s", analysis.FormatUCIMove(a.BestMove))
	if a.Ponder != nil {
		fmt.Fprintf(w, " (ponder %s)", analysis.FormatUCIMove(*a.Ponder))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Evaluation: %s (bar %.1f%%)\n", a.Evaluation, a.Evaluation.BarPercentage())
	if a.Depth > 0 {
		fmt.Fprintf(w, "Depth: %d\n", a.Depth)
	}

	lineCfg := cfg.Output
	lineCfg.KeepResult = false
	outputMoves(p.Moves, "", &lineCfg, w)

	if cfg.Output.History {
		for _, ply := range p.Plies {
			fmt.Fprintf(w, "%-8s %s\n", ply.SAN, ply.FEN)
		}
	}
	if p.Outcome != "" {
		fmt.Fprintf(w, "Outcome: %s\n", p.Outcome)
	}
}

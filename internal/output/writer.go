package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// GameWriter writes finished or in-progress games in one output format.
type GameWriter interface {
	// WriteGame writes or buffers one game.
	WriteGame(g *game.Game) error

	// Flush writes anything buffered.
	Flush() error

	// Close flushes the writer. It does not close the underlying stream.
	Close() error
}

// NewGameWriter returns the writer for the configured output format. JSON
// games are written one document per game.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as tags, movetext and a position summary.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a text writer on w.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes g immediately.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	writeGameText(g, &tw.cfg.Output, tw.w)
	return nil
}

// Flush is a no-op; text is never buffered.
func (tw *TextWriter) Flush() error { return nil }

// Close is a no-op.
func (tw *TextWriter) Close() error { return nil }

// JSONWriter writes games as JSON. In batch mode games are collected and
// written as one {"games": [...]} document on Flush; in single mode each
// game is its own document.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*game.Game
	single bool
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each game at once.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteGame writes g, or buffers it in batch mode.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	if jw.single {
		return encodeJSON(jw.w, GameToJSON(g, jw.cfg))
	}
	jw.games = append(jw.games, g)
	return nil
}

// Flush writes the buffered games and empties the buffer.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.cfg, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes pending games.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

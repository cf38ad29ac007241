package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how a game is printed.
type OutputFormat string

const (
	Text OutputFormat = "text" // Movetext, final FEN and outcome
	JSON OutputFormat = "json" // One JSON document per game
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat `yaml:"format"`

	// MaxLineLength is the maximum line length for movetext output
	MaxLineLength uint `yaml:"line_length"`

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool `yaml:"move_numbers"`

	// KeepResult controls whether the result token ends the movetext
	KeepResult bool `yaml:"result"`

	// History includes the FEN after every ply
	History bool `yaml:"history"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Text,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResult:      true,
	}
}

// Validate checks the output format and line length.
func (o *OutputConfig) Validate() error {
	switch o.Format {
	case Text, JSON:
	default:
		return fmt.Errorf("output format %q is not text or json: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength > 0 && o.MaxLineLength < minLineLength {
		return fmt.Errorf("line length (%d) below %d: %w", o.MaxLineLength, minLineLength, errors.ErrInvalidConfig)
	}
	return nil
}

// minLineLength fits the longest single movetext token with room to spare.
const minLineLength = 20

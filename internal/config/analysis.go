package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// AnalysisConfig holds settings for the computer opponent and engine lines.
type AnalysisConfig struct {
	// Level is the computer's strength, 1 to 5
	Level int `yaml:"level"`

	// Human is the colour the person plays ("white" or "black"); empty
	// when both sides are played by hand
	Human string `yaml:"human,omitempty"`
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{Level: 3}
}

// Validate checks the level and the human colour.
func (a *AnalysisConfig) Validate() error {
	if a.Level < analysis.MinLevel || a.Level > analysis.MaxLevel {
		return fmt.Errorf("analysis level (%d) outside %d..%d: %w",
			a.Level, analysis.MinLevel, analysis.MaxLevel, errors.ErrInvalidConfig)
	}
	if _, _, err := a.humanColour(); err != nil {
		return err
	}
	return nil
}

// Opponent returns the computer opponent, or false when no human colour is set.
func (a *AnalysisConfig) Opponent() (analysis.Opponent, bool, error) {
	human, ok, err := a.humanColour()
	if err != nil || !ok {
		return analysis.Opponent{}, false, err
	}
	o, err := analysis.NewOpponent(human, a.Level)
	if err != nil {
		return analysis.Opponent{}, false, err
	}
	return o, true, nil
}

func (a *AnalysisConfig) humanColour() (chess.Colour, bool, error) {
	switch strings.ToLower(a.Human) {
	case "":
		return chess.White, false, nil
	case "white", "w":
		return chess.White, true, nil
	case "black", "b":
		return chess.Black, true, nil
	default:
		return chess.White, false, fmt.Errorf("human colour %q is not white or black: %w", a.Human, errors.ErrInvalidConfig)
	}
}

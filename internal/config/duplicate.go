package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection during
// batch validation.
type DuplicateConfig struct {
	// Report marks positions already seen earlier in the batch
	Report bool `yaml:"report"`

	// MaxPositions caps the positions remembered (0 = no limit)
	MaxPositions int `yaml:"max_positions"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Report:       true,
		MaxPositions: 0,
	}
}

// Validate checks that the capacity is usable.
func (d *DuplicateConfig) Validate() error {
	if d.MaxPositions < 0 {
		return fmt.Errorf("max positions (%d) must not be negative: %w", d.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}

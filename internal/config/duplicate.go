package config

import (
	"fmt"

	"github.com/lgbarn/chess-features/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops positions already seen earlier in the run.
	Suppress bool

	// MaxPositions caps the number of remembered positions (0 = unlimited).
	MaxPositions int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxPositions < 0 {
		return fmt.Errorf("max positions (%d) must not be negative: %w", d.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}

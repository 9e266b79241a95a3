package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate puzzle detection.
type DuplicateConfig struct {
	// Suppress skips puzzles whose position was already seen in this run
	Suppress bool

	// MaxCapacity bounds the duplicate hash table (0 = unlimited)
	MaxCapacity int

	// DuplicateFile receives the notation of suppressed puzzles, if set
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate rejects a negative table capacity.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// SearchConfig bounds the work spent on a single puzzle.
type SearchConfig struct {
	// MaxStates caps the states discovered per puzzle (0 = unbounded)
	MaxStates int

	// Timeout caps the wall time per puzzle (0 = none)
	Timeout time.Duration
}

// NewSearchConfig creates a SearchConfig with default values.
// Searches are unbounded by default.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{}
}

// Validate checks that the search limits are usable.
func (s *SearchConfig) Validate() error {
	if s.MaxStates < 0 {
		return fmt.Errorf("state limit %d is negative: %w", s.MaxStates, errors.ErrInvalidConfig)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout %v is negative: %w", s.Timeout, errors.ErrInvalidConfig)
	}
	return nil
}

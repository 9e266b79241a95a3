package config

import (
	"fmt"

	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// OutputFormat selects how solve results are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // One line per puzzle
	JSON                     // One JSON document per run
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// ShowBoard draws the board after every capture in text output
	ShowBoard bool

	// Timing reports the elapsed solve time per puzzle
	Timing bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Format: Text}
}

// Validate rejects unknown formats.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("unknown output format %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}

// Package config provides run configuration for chainsolve.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=per-puzzle commentary

	// Workers is the number of solver goroutines; 0 means runtime.NumCPU.
	Workers int

	Output    *OutputConfig
	Search    *SearchConfig
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Search:     NewSearchConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output streams must be set: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Duplicate.Validate(); err != nil {
		return err
	}
	return c.Search.Validate()
}

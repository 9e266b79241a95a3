package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithBoard enables drawing the board after each capture.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithTiming enables per-puzzle timing.
func (b *ConfigBuilder) WithTiming(enabled bool) *ConfigBuilder {
	b.cfg.Output.Timing = enabled
	return b
}

// WithMaxStates sets the per-puzzle state limit.
func (b *ConfigBuilder) WithMaxStates(n int) *ConfigBuilder {
	b.cfg.Search.MaxStates = n
	return b
}

// WithTimeout sets the per-puzzle time limit.
func (b *ConfigBuilder) WithTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Search.Timeout = d
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithDuplicateCapacity bounds the duplicate hash table.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxCapacity = n
	return b
}

// WithWorkers sets the number of solver goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

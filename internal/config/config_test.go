package config

import (
	"bytes"
	stderrors "errors"
	"testing"
	"time"

	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.Output.Format != Text {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, Text)
	}
	if cfg.Output.ShowBoard || cfg.Output.Timing {
		t.Error("board and timing output should be off by default")
	}
	if cfg.Search.MaxStates != 0 || cfg.Search.Timeout != 0 {
		t.Error("search should be unbounded by default")
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestOutputFormat_String(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{Text, "text"},
		{JSON, "json"},
		{OutputFormat(7), "OutputFormat(7)"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"explicit workers", func(c *Config) { c.Workers = 8 }, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"missing log", func(c *Config) { c.LogFile = nil }, true},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(9) }, true},
		{"state limit", func(c *Config) { c.Search.MaxStates = 1000 }, false},
		{"negative state limit", func(c *Config) { c.Search.MaxStates = -5 }, true},
		{"negative timeout", func(c *Config) { c.Search.Timeout = -time.Second }, true},
		{"duplicate capacity", func(c *Config) { c.Duplicate.MaxCapacity = 1000 }, false},
		{"negative duplicate capacity", func(c *Config) { c.Duplicate.MaxCapacity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithBoard(true).
		WithTiming(true).
		WithMaxStates(500).
		WithTimeout(2 * time.Second).
		WithDuplicateSuppression(true).
		WithDuplicateCapacity(64).
		WithWorkers(3).
		WithOutput(out).
		WithLog(log).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if !cfg.Output.ShowBoard || !cfg.Output.Timing {
		t.Error("board and timing output should be enabled")
	}
	if cfg.Search.MaxStates != 500 {
		t.Errorf("MaxStates = %d, want 500", cfg.Search.MaxStates)
	}
	if cfg.Search.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.Search.Timeout)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Duplicate.MaxCapacity != 64 {
		t.Errorf("MaxCapacity = %d, want 64", cfg.Duplicate.MaxCapacity)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.OutputFile != out || cfg.LogFile != log {
		t.Error("builder did not set output streams")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config should be valid: %v", err)
	}
}

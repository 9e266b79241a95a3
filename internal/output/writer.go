package output

import (
	"io"

	"github.com/lgbarn/chainsolve-go/internal/config"
	"github.com/lgbarn/chainsolve-go/internal/worker"
)

// ResultWriter is the interface for writing solve results to output.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) ResultWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

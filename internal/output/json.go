package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chainsolve-go/internal/config"
	"github.com/lgbarn/chainsolve-go/internal/worker"
)

// JSONResult represents one solved puzzle in JSON format.
type JSONResult struct {
	ID        string        `json:"id"`
	Puzzle    string        `json:"puzzle"`
	Line      int           `json:"line,omitempty"`
	Solved    bool          `json:"solved"`
	Captures  []JSONCapture `json:"captures,omitempty"`
	Explored  int           `json:"explored"`
	Levels    int           `json:"levels"`
	ElapsedMs *float64      `json:"elapsedMs,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// JSONCapture represents a single capture in JSON format.
type JSONCapture struct {
	Index  int    `json:"index"`
	By     string `json:"by"`
	Piece  string `json:"piece"`
	Square string `json:"square"`
	Direct bool   `json:"direct"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a solve result to JSON format.
func ResultToJSON(r worker.ProcessResult, cfg *config.OutputConfig) *JSONResult {
	jr := &JSONResult{
		ID:       r.Item.ID,
		Puzzle:   r.Item.Notation,
		Line:     r.Item.Line,
		Solved:   r.Result.Solved,
		Explored: r.Result.Explored,
		Levels:   r.Result.Levels,
	}
	if cfg.Timing && r.Item.Puzzle != nil {
		ms := float64(r.Elapsed.Microseconds()) / 1000
		jr.ElapsedMs = &ms
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}
	if !r.Result.Solved {
		return jr
	}

	captures, err := Captures(r.Item.Puzzle, r.Result.Captures)
	if err != nil {
		jr.Error = err.Error()
		return jr
	}
	jr.Captures = make([]JSONCapture, len(captures))
	for n, c := range captures {
		jr.Captures[n] = JSONCapture{
			Index:  c.Index,
			By:     strings.ToLower(c.By.String()),
			Piece:  strings.ToLower(c.Piece.String()),
			Square: c.Square.String(),
			Direct: c.Direct,
		}
	}
	return jr
}

// JSONWriter buffers results and writes them as one JSON document on Close
// or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	results []*JSONResult
	written bool
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jw.results = append(jw.results, ResultToJSON(r, jw.cfg))
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.results) == 0 {
		return nil
	}
	return jw.encode()
}

func (jw *JSONWriter) encode() error {
	if jw.results == nil {
		jw.results = []*JSONResult{}
	}
	jw.written = true
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer. A writer that never wrote
// anything emits an empty document.
func (jw *JSONWriter) Close() error {
	if !jw.written {
		return jw.encode()
	}
	return jw.Flush()
}

package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chainsolve-go/internal/config"
	"github.com/lgbarn/chainsolve-go/internal/worker"
)

// TextWriter writes one line per puzzle, optionally followed by boards.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes the summary line for r.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	line, captures, err := summary(r)
	if tw.cfg.Timing && r.Item.Puzzle != nil {
		line += fmt.Sprintf(" (%s)", r.Elapsed.Round(time.Microsecond))
	}
	if _, werr := fmt.Fprintln(tw.w, line); werr != nil {
		return werr
	}
	if err != nil || !tw.cfg.ShowBoard || r.Item.Puzzle == nil {
		return nil
	}

	p := r.Item.Puzzle
	if _, err := fmt.Fprintf(tw.w, "\n%s", p.Draw(p.InitialState())); err != nil {
		return err
	}
	for n, c := range captures {
		if _, err := fmt.Fprintf(tw.w, "\n%d. %s\n%s", n+1, c, p.Draw(c.After)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(tw.w)
	return err
}

// summary formats the line for r. A solution that fails to replay is
// reported in the line and returned as an error.
func summary(r worker.ProcessResult) (string, []Capture, error) {
	prefix := r.Item.Notation + ": "
	switch {
	case r.Err != nil:
		return prefix + "error: " + r.Err.Error(), nil, r.Err
	case !r.Result.Solved:
		return prefix + "no solution", nil, nil
	}
	captures, err := Captures(r.Item.Puzzle, r.Result.Captures)
	if err != nil {
		return prefix + "error: " + err.Error(), nil, err
	}
	parts := make([]string, len(captures))
	for n, c := range captures {
		parts[n] = c.String()
	}
	line := fmt.Sprintf("%ssolved in %d", prefix, len(captures))
	if len(parts) > 0 {
		line += ": " + strings.Join(parts, " ")
	}
	return line, captures, nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

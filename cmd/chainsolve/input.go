package main

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chainsolve-go/internal/errors"
	"github.com/lgbarn/chainsolve-go/internal/puzzle"
	"github.com/lgbarn/chainsolve-go/internal/worker"
)

// input is one puzzle as it appeared on the command line or in a file.
type input struct {
	text string
	file string
	line int
}

// readPuzzles reads one puzzle per line from r. Blank lines and lines
// starting with # are skipped; surrounding whitespace is trimmed.
func readPuzzles(r io.Reader, name string) ([]input, error) {
	var inputs []input
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, input{text: line, file: name, line: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return inputs, nil
}

// collectInputs gathers puzzles from the -f file (if any) followed by the
// command-line arguments.
func collectInputs(file string, args []string, stdin io.Reader) ([]input, error) {
	var inputs []input
	switch file {
	case "":
	case "-":
		read, err := readPuzzles(stdin, "stdin")
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, read...)
	default:
		f, err := os.Open(file) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, err
		}
		defer f.Close() //nolint:errcheck // read-only
		read, err := readPuzzles(f, file)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, read...)
	}
	for _, arg := range args {
		inputs = append(inputs, input{text: strings.TrimSpace(arg)})
	}
	return inputs, nil
}

// newItem parses in and assigns it a run-unique ID. Parse failures are
// returned alongside the item so they can be reported in order.
func newItem(index int, in input) (worker.WorkItem, error) {
	item := worker.WorkItem{
		Index:    index,
		ID:       uuid.NewString(),
		Notation: in.text,
		Line:     in.line,
	}
	p, err := puzzle.Parse(in.text)
	if err != nil {
		var pe *errors.ParseError
		if stderrors.As(err, &pe) {
			pe.File = in.file
			pe.Line = in.line
		}
		return item, &errors.PuzzleError{Err: err, PuzzleNum: index + 1}
	}
	item.Puzzle = p
	return item, nil
}

// Package errors provides sentinel errors and error types for chainsolve.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed puzzle notation string.
	ErrInvalidNotation = errors.New("invalid puzzle notation")

	// ErrUnknownPiece indicates an unrecognised piece designator.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrNoPlayerPiece indicates that no piece was designated as the player's.
	ErrNoPlayerPiece = errors.New("no player piece")

	// ErrTooManyPieces indicates more pieces than the progress encoding holds.
	ErrTooManyPieces = errors.New("too many pieces")

	// ErrInvalidLayout indicates an inconsistent structured board description.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrCorruptState indicates a progress state whose in-hand piece does not
	// exist. It is raised as a panic because it can only come from a bug.
	ErrCorruptState = errors.New("corrupt progress state")

	// ErrSearchLimit indicates the solver stopped at its state budget.
	ErrSearchLimit = errors.New("search limit reached")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PuzzleError wraps errors with puzzle context: its position in the input
// and where it was read from. It supports unwrapping via errors.Is() and
// errors.As().
type PuzzleError struct {
	Err       error  // The underlying error
	PuzzleNum int    // 1-based puzzle number in the input
	Notation  string // The puzzle text (if known)
	File      string // Source file name (if known)
	Line      int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *PuzzleError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("puzzle %d", e.PuzzleNum))

	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Notation))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PuzzleError wrapper.
func (e *PuzzleError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}
	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chainsolve-go/internal/config"
)

var (
	// Input options
	puzzleFile = flag.String("f", "", "File of puzzles, one per line (# for comments, - for stdin)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Draw the board after every capture")
	showTiming   = flag.Bool("time", false, "Report the solve time of each puzzle")

	// Search limits
	maxStates = flag.Int("max-states", 0, "Give up on a puzzle after discovering N states (0 = no limit)")
	timeout   = flag.Duration("timeout", 0, "Give up on a puzzle after this long (0 = no limit)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate puzzles")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Log search statistics for every puzzle")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applySearchFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Workers = *workers
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Timing = *showTiming
}

// applySearchFlags configures per-puzzle search limits.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.MaxStates = *maxStates
	cfg.Search.Timeout = *timeout
}

// applyDuplicateFlags configures duplicate handling.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates || *duplicateFile != ""
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

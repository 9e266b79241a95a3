// chainsolve solves capture-chain puzzles: boards where one piece must
// capture every other piece, taking on the movement of each piece it takes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/lgbarn/chainsolve-go/internal/config"
	"github.com/lgbarn/chainsolve-go/internal/errors"
	"github.com/lgbarn/chainsolve-go/internal/hashing"
	"github.com/lgbarn/chainsolve-go/internal/output"
	"github.com/lgbarn/chainsolve-go/internal/solver"
	"github.com/lgbarn/chainsolve-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chainsolve-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputs, err := collectInputs(*puzzleFile, flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading puzzles: %v\n", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var detector *hashing.ThreadSafeDuplicateDetector
	if cfg.Duplicate.Suppress {
		detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.MaxCapacity)
	}

	stats, err := solveAll(ctx, cfg, inputs, detector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats)
	}
	if stats.errors > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// runStats counts what happened to each input puzzle.
type runStats struct {
	total      int
	solved     int
	unsolved   int
	errors     int
	duplicates int
}

// solveAll parses inputs, drops duplicates, solves the rest on a worker pool
// and writes results in input order.
func solveAll(ctx context.Context, cfg *config.Config, inputs []input, detector *hashing.ThreadSafeDuplicateDetector) (runStats, error) {
	stats := runStats{total: len(inputs)}
	results := make([]*worker.ProcessResult, len(inputs))

	var pending []worker.WorkItem
	for i, in := range inputs {
		item, err := newItem(i, in)
		switch {
		case err != nil:
			results[i] = &worker.ProcessResult{Item: item, Err: err}
		case detector != nil && detector.CheckAndAdd(item.Puzzle):
			stats.duplicates++
			if cfg.Duplicate.DuplicateFile != nil {
				fmt.Fprintln(cfg.Duplicate.DuplicateFile, item.Notation)
			}
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "puzzle %d: duplicate of an earlier puzzle\n", i+1)
			}
		default:
			pending = append(pending, item)
		}
	}

	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	s := &solver.Solver{MaxStates: cfg.Search.MaxStates}
	pool := worker.NewPoolWithOptions(
		worker.SolveFunc(s, cfg.Search.Timeout),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(numWorkers*2),
		worker.WithContext(ctx),
	)
	pool.Start()

	go func() {
		for _, item := range pending {
			pool.Submit(item)
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "puzzle %d: explored %d states in %d levels (%s)\n",
				r.Item.Index+1, r.Result.Explored, r.Result.Levels, r.Elapsed)
		}
		results[r.Item.Index] = &r
	}

	// A stopped pool skips queued items; report them as cancelled.
	for _, item := range pending {
		if results[item.Index] == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			results[item.Index] = &worker.ProcessResult{
				Item: item,
				Err:  &errors.PuzzleError{Err: err, PuzzleNum: item.Index + 1},
			}
		}
	}

	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	for _, r := range results {
		if r == nil {
			continue
		}
		switch {
		case r.Err != nil:
			stats.errors++
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "%v\n", r.Err)
			}
		case r.Result.Solved:
			stats.solved++
		default:
			stats.unsolved++
		}
		if err := w.WriteResult(*r); err != nil {
			return stats, err
		}
	}
	return stats, w.Close()
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(w io.Writer, stats runStats) {
	fmt.Fprintf(w, "%d puzzle(s): %d solved, %d unsolvable, %d error(s)",
		stats.total, stats.solved, stats.unsolved, stats.errors)
	if stats.duplicates > 0 {
		fmt.Fprintf(w, ", %d duplicate(s)", stats.duplicates)
	}
	fmt.Fprintln(w, ".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chainsolve [options] [puzzle...]\n\n")
	fmt.Fprintf(os.Stderr, "Solves capture-chain puzzles given as arguments or with -f.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPuzzle notation:\n")
	fmt.Fprintf(os.Stderr, "  <board> <square>  FEN-style ranks from 8 down to 1, then the player's square\n")
	fmt.Fprintf(os.Stderr, "  P B R N           pawn, bishop, rook, knight (either case)\n")
	fmt.Fprintf(os.Stderr, "  K Q               king or queen; both move as a queen\n")
	fmt.Fprintf(os.Stderr, "  X                 obstacle\n")
	fmt.Fprintf(os.Stderr, "\nExample:\n")
	fmt.Fprintf(os.Stderr, "  chainsolve '8/8/8/8/8/8/8/R1n4b a1'\n")
}

// Package worker provides a worker pool for solving puzzles in parallel.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/lgbarn/chainsolve-go/internal/puzzle"
	"github.com/lgbarn/chainsolve-go/internal/solver"
)

// WorkItem represents a puzzle to be solved.
type WorkItem struct {
	Puzzle   *puzzle.Puzzle
	Index    int    // Original index for ordering output
	ID       string // Run-unique identifier
	Notation string // Input text as read
	Line     int    // Input line, 0 for command-line puzzles
}

// ProcessResult represents the result of solving a puzzle.
type ProcessResult struct {
	Item    WorkItem
	Result  solver.Result
	Elapsed time.Duration
	Err     error
}

// ProcessFunc is the function signature for processing a work item.
// ctx is cancelled when the pool is stopped.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel puzzle solving.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithContext derives the pool's cancellation from ctx.
func WithContext(ctx context.Context) PoolOption {
	return func(p *Pool) {
		p.ctx = ctx
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10, background context.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctx, p.cancel = context.WithCancel(p.ctx)
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop cancels searches in flight and makes workers skip queued items.
func (p *Pool) Stop() {
	p.cancel()
}

// IsStopped returns true if the pool has been stopped or its parent
// context is done.
func (p *Pool) IsStopped() bool {
	return p.ctx.Err() != nil
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	p.cancel()
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

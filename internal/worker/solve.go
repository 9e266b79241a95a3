package worker

import (
	"context"
	"time"

	"github.com/lgbarn/chainsolve-go/internal/solver"
)

// SolveFunc returns a ProcessFunc that searches each item with s.
// A positive timeout bounds every search separately.
func SolveFunc(s *solver.Solver, timeout time.Duration) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		res, err := s.SolveContext(ctx, item.Puzzle)
		return ProcessResult{
			Item:    item,
			Result:  res,
			Elapsed: time.Since(start),
			Err:     err,
		}
	}
}

// Package solver finds a shortest capture sequence for a puzzle, or proves
// that none exists, by breadth-first search over progress states.
package solver

import (
	"context"
	"slices"

	"github.com/lgbarn/chainsolve-go/internal/errors"
	"github.com/lgbarn/chainsolve-go/internal/puzzle"
)

// Result is the outcome of a search.
type Result struct {
	// Solved is false when the puzzle has no solution.
	Solved bool
	// Captures lists the captured piece indices in order.
	Captures []int
	// Explored counts the distinct states discovered, the initial one included.
	Explored int
	// Levels counts the search levels expanded.
	Levels int
}

// step records how a state was first reached.
type step struct {
	prev     puzzle.State
	captured int
}

// Solver searches puzzles. The zero value searches without limits.
type Solver struct {
	// MaxStates bounds the number of discovered states; 0 means unbounded.
	MaxStates int
}

// Solve searches p without limits.
func Solve(p *puzzle.Puzzle) Result {
	res, _ := (&Solver{}).SolveContext(context.Background(), p)
	return res
}

// SolveContext searches p level by level. Every capture removes one piece,
// so states are levelled by their remaining count and the first path found to
// any state is a shortest one.
//
// It returns ErrSearchLimit if MaxStates is exceeded and ctx.Err() if ctx is
// done between levels. An unsolvable puzzle is not an error.
func (s *Solver) SolveContext(ctx context.Context, p *puzzle.Puzzle) (Result, error) {
	initial := p.InitialState()
	if initial.Done() {
		return Result{Solved: true, Captures: []int{}, Explored: 1}, nil
	}

	preds := map[puzzle.State]step{initial: {}}
	frontier := []puzzle.State{initial}
	var res Result

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			res.Explored = len(preds)
			return res, err
		}
		res.Levels++

		var next []puzzle.State
		for _, state := range frontier {
			for captured, succ := range p.Successors(state) {
				if _, seen := preds[succ]; seen {
					continue
				}
				preds[succ] = step{prev: state, captured: captured}
				if succ.Done() {
					res.Solved = true
					res.Captures = reconstruct(preds, initial, succ)
					res.Explored = len(preds)
					return res, nil
				}
				if s.MaxStates > 0 && len(preds) > s.MaxStates {
					res.Explored = len(preds)
					return res, errors.Wrapf(errors.ErrSearchLimit, "%d states", s.MaxStates)
				}
				next = append(next, succ)
			}
		}
		frontier = next
	}

	res.Explored = len(preds)
	return res, nil
}

// reconstruct walks predecessor links back from terminal to initial.
func reconstruct(preds map[puzzle.State]step, initial, terminal puzzle.State) []int {
	var captures []int
	for state := terminal; state != initial; {
		st := preds[state]
		captures = append(captures, st.captured)
		state = st.prev
	}
	slices.Reverse(captures)
	return captures
}

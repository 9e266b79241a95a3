// Package output renders solve results as text or JSON.
package output

import (
	"github.com/lgbarn/chainsolve-go/internal/chess"
	"github.com/lgbarn/chainsolve-go/internal/puzzle"
	"github.com/lgbarn/chainsolve-go/internal/solver"
)

// Capture describes one step of a solution.
type Capture struct {
	Index  int          // Captured piece
	By     chess.Kind   // Kind in hand before the capture
	Piece  chess.Kind   // Kind of the captured piece
	Square chess.Square // Square of the captured piece
	Direct bool         // Reachable in a single ordinary chess move
	Before puzzle.State
	After  puzzle.State
}

// Captures replays a solution and annotates every step.
func Captures(p *puzzle.Puzzle, indices []int) ([]Capture, error) {
	states, err := solver.Replay(p, indices)
	if err != nil {
		return nil, err
	}
	captures := make([]Capture, len(indices))
	for n, i := range indices {
		before := states[n]
		captures[n] = Capture{
			Index:  i,
			By:     p.Kind(before.InHand()),
			Piece:  p.Kind(i),
			Square: p.Square(i),
			Direct: p.IsDirect(before, i),
			Before: before,
			After:  states[n+1],
		}
	}
	return captures, nil
}

// String formats the capture as Rxa8, or R~a8 when the capturing piece has
// to travel through more than one move.
func (c Capture) String() string {
	sep := byte('x')
	if !c.Direct {
		sep = '~'
	}
	return string([]byte{c.By.Letter(), sep}) + c.Square.String()
}

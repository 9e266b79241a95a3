package solver

import (
	"fmt"

	"github.com/lgbarn/chainsolve-go/internal/puzzle"
)

// Replay plays captures from the initial state of p and returns every state
// along the way, the initial one first. It fails if a capture is not legal in
// the state it is played from.
func Replay(p *puzzle.Puzzle, captures []int) ([]puzzle.State, error) {
	states := make([]puzzle.State, 0, len(captures)+1)
	state := p.InitialState()
	states = append(states, state)
	for n, want := range captures {
		found := false
		for captured, next := range p.Successors(state) {
			if captured == want {
				state = next
				found = true
				break
			}
		}
		if !found {
			return states, fmt.Errorf("capture %d: %s cannot take %s", n+1,
				p.Describe(state.InHand()), p.Describe(want))
		}
		states = append(states, state)
	}
	return states, nil
}

// Verify reports whether captures is a complete solution of p.
func Verify(p *puzzle.Puzzle, captures []int) error {
	states, err := Replay(p, captures)
	if err != nil {
		return err
	}
	if last := states[len(states)-1]; !last.Done() {
		return fmt.Errorf("%d pieces left uncaptured", last.RemainingCount())
	}
	return nil
}

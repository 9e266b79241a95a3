package puzzle

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/chainsolve-go/internal/chess"
)

// State packs the progress of a puzzle into one word. The low MaxPieces bits
// mark the pieces still to be captured; the bits above hold the index of the
// piece in hand. The in-hand piece is never marked as remaining.
type State uint32

const (
	handShift     = MaxPieces
	remainingMask = 1<<MaxPieces - 1
)

// NewState packs a remaining-capture mask and an in-hand piece index.
func NewState(remaining uint32, inHand int) State {
	return State(remaining&remainingMask | uint32(inHand)<<handShift)
}

// Remaining returns the mask of pieces still to be captured.
func (s State) Remaining() uint32 {
	return uint32(s) & remainingMask
}

// InHand returns the index of the piece that makes the next capture.
func (s State) InHand() int {
	return int(uint32(s) >> handShift)
}

// Has reports whether piece i still has to be captured.
func (s State) Has(i int) bool {
	return i >= 0 && i < MaxPieces && s.Remaining()&(1<<uint(i)) != 0
}

// RemainingCount returns the number of pieces still to be captured.
func (s State) RemainingCount() int {
	return bits.OnesCount32(s.Remaining())
}

// Done reports whether every piece has been captured.
func (s State) Done() bool {
	return s.Remaining() == 0
}

// Capture returns the state after the in-hand piece takes piece i, which
// then becomes the piece in hand.
func (s State) Capture(i int) State {
	return NewState(s.Remaining()&^(1<<uint(i)), i)
}

// String returns a debug representation of the state.
func (s State) String() string {
	return fmt.Sprintf("hand=%d remaining=%027b", s.InHand(), s.Remaining())
}

// InitialState returns the state before the first capture: every piece but
// the player's remains and the player's piece is in hand.
func (p *Puzzle) InitialState() State {
	all := uint32(1)<<uint(p.count) - 1
	return NewState(all&^(1<<uint(p.player)), p.player)
}

// Targets returns the squares of the pieces still to be captured in s.
func (p *Puzzle) Targets(s State) chess.SquareSet {
	var targets chess.SquareSet
	for rest := s.Remaining(); rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros32(rest)
		targets = targets.With(p.Square(i))
	}
	return targets
}

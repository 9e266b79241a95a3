package puzzle

import (
	"iter"

	"github.com/lgbarn/chainsolve-go/internal/chess"
	"github.com/lgbarn/chainsolve-go/internal/engine"
	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// Successors yields every state reachable from s with one capture, paired
// with the index of the captured piece. Captures come in ascending square
// order and each capturable square appears once.
//
// Successors panics with ErrCorruptState if the piece in hand does not exist.
func (p *Puzzle) Successors(s State) iter.Seq2[int, State] {
	return func(yield func(int, State) bool) {
		for _, sq := range p.captures(s).Squares() {
			captured := p.PieceAt(sq)
			if !yield(captured, s.Capture(captured)) {
				return
			}
		}
	}
}

// captures returns the squares the piece in hand can capture on.
func (p *Puzzle) captures(s State) chess.SquareSet {
	hand := s.InHand()
	kind := p.Kind(hand)
	if kind == chess.NoKind {
		panic(errors.Wrapf(errors.ErrCorruptState, "piece %d in hand of %s", hand, s))
	}
	start := chess.SetOf(p.squares[hand])
	return engine.Capturable(kind, start, p.obstacles, p.Targets(s))
}

// IsDirect reports whether the capture of piece i from state s is an
// ordinary single chess move rather than a chain of slides.
func (p *Puzzle) IsDirect(s State, i int) bool {
	hand := s.InHand()
	direct := engine.DirectCaptures(p.Kind(hand), p.Square(hand), p.obstacles, p.Targets(s))
	return direct.Has(p.Square(i))
}

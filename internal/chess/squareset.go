package chess

import (
	"math/bits"
	"strings"
)

// SquareSet is a subset of the 64 board squares. Bit i is set if and only if
// square i is a member. All operations return new sets.
type SquareSet uint64

// Empty and full sets.
const (
	EmptySet SquareSet = 0
	FullSet  SquareSet = ^SquareSet(0)
)

// Edge masks used to keep shifted sets from wrapping around the board.
const (
	NotFileA   SquareSet = ^SquareSet(0x0101010101010101)
	NotFileH   SquareSet = ^SquareSet(0x8080808080808080)
	NotFilesAB SquareSet = ^SquareSet(0x0303030303030303)
	NotFilesGH SquareSet = ^SquareSet(0xc0c0c0c0c0c0c0c0)
)

// SetOf returns the set containing the given squares. Invalid squares are
// ignored.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.With(sq)
	}
	return s
}

// And returns the intersection of s and o.
func (s SquareSet) And(o SquareSet) SquareSet { return s & o }

// Or returns the union of s and o.
func (s SquareSet) Or(o SquareSet) SquareSet { return s | o }

// AndNot returns the squares of s that are not in o.
func (s SquareSet) AndNot(o SquareSet) SquareSet { return s &^ o }

// Not returns the complement of s.
func (s SquareSet) Not() SquareSet { return ^s }

// Shl shifts every member n squares towards higher indices, dropping
// squares shifted off the board.
func (s SquareSet) Shl(n uint) SquareSet { return s << n }

// Shr shifts every member n squares towards lower indices, dropping
// squares shifted off the board.
func (s SquareSet) Shr(n uint) SquareSet { return s >> n }

// Has reports whether sq is a member of s.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<sq) != 0
}

// With returns s with sq added.
func (s SquareSet) With(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<sq
}

// Without returns s with sq removed.
func (s SquareSet) Without(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s &^ (1 << sq)
}

// IsEmpty reports whether s has no members.
func (s SquareSet) IsEmpty() bool { return s == 0 }

// Count returns the number of members.
func (s SquareSet) Count() int { return bits.OnesCount64(uint64(s)) }

// Squares returns the members of s in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Count())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

// Draw renders the set as an 8x8 diagram, rank 8 first.
func (s SquareSet) Draw() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(RankBase + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			if s.Has(SquareAt(file, rank)) {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}

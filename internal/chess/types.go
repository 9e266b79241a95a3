// Package chess provides the board geometry and piece kinds shared by the
// capture-chain engine and solver.
package chess

import "fmt"

// Kind represents the movement kind of a piece.
type Kind int

const (
	NoKind  Kind = iota // Absent piece
	Pawn
	Bishop
	Rook
	Monarch // King or queen; moves like rook and bishop combined
	Knight
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Bishop", "Rook", "Monarch", "Knight"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'B', 'R', 'Q', 'N'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a notation letter to a kind. Case is ignored and
// both K and Q denote a Monarch.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'K', 'k', 'Q', 'q':
		return Monarch, true
	default:
		return NoKind, false
	}
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square indexes the board as 8*rank + file, so a1 is 0, h1 is 7 and a2 is 8.
type Square uint8

// NoSquare marks an absent square.
const NoSquare Square = NumSquares

// SquareAt returns the square at the given zero-based file and rank.
func SquareAt(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// File returns the zero-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the zero-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s < NoSquare
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", name)
	}
	file := int(name[0]) - FileBase
	rank := int(name[1]) - RankBase
	sq := SquareAt(file, rank)
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("invalid square %q", name)
	}
	return sq, nil
}

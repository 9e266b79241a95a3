// Package puzzle describes capture-chain puzzles: the static board, the packed
// progress state and the transition from one state to the next.
package puzzle

import (
	"fmt"

	"github.com/lgbarn/chainsolve-go/internal/chess"
	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// MaxPieces is the number of pieces the progress encoding can track.
const MaxPieces = 27

// NoPiece marks a square without a piece.
const NoPiece = -1

// Layout is the structured form of a puzzle: which squares are blocked,
// which kind of piece stands on each occupied square, and where the player
// starts.
type Layout struct {
	Obstacles chess.SquareSet
	Pieces    map[chess.Square]chess.Kind
	Player    chess.Square
}

// Puzzle is an immutable puzzle description. Pieces are numbered from 0 in
// ascending square order.
type Puzzle struct {
	obstacles chess.SquareSet
	kinds     [MaxPieces]chess.Kind
	squares   [MaxPieces]chess.Square
	pieceAt   [chess.NumSquares]int8
	count     int
	player    int
}

// New builds a puzzle from a layout.
func New(layout Layout) (*Puzzle, error) {
	if n := len(layout.Pieces); n > MaxPieces {
		return nil, errors.Wrapf(errors.ErrTooManyPieces, "%d pieces, at most %d", n, MaxPieces)
	}
	for sq, kind := range layout.Pieces {
		if !sq.Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidLayout, "square %d is off the board", sq)
		}
		if kind <= chess.NoKind || kind >= chess.NumKinds {
			return nil, errors.Wrapf(errors.ErrUnknownPiece, "kind %d on %s", int(kind), sq)
		}
		if layout.Obstacles.Has(sq) {
			return nil, errors.Wrapf(errors.ErrInvalidLayout, "%s is both a piece and an obstacle", sq)
		}
	}

	p := &Puzzle{obstacles: layout.Obstacles, player: NoPiece}
	for i := range p.pieceAt {
		p.pieceAt[i] = NoPiece
	}
	for i := range p.squares {
		p.squares[i] = chess.NoSquare
	}
	for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
		kind, ok := layout.Pieces[sq]
		if !ok {
			continue
		}
		p.kinds[p.count] = kind
		p.squares[p.count] = sq
		p.pieceAt[sq] = int8(p.count)
		if sq == layout.Player {
			p.player = p.count
		}
		p.count++
	}

	if p.player == NoPiece {
		if layout.Player.Valid() {
			return nil, errors.Wrapf(errors.ErrNoPlayerPiece, "no piece on %s", layout.Player)
		}
		return nil, errors.ErrNoPlayerPiece
	}
	return p, nil
}

// MustNew is like New but panics on error. It is intended for fixed puzzles
// in tests and examples.
func MustNew(layout Layout) *Puzzle {
	p, err := New(layout)
	if err != nil {
		panic(err)
	}
	return p
}

// Obstacles returns the blocked squares.
func (p *Puzzle) Obstacles() chess.SquareSet { return p.obstacles }

// NumPieces returns the number of pieces, the player's included.
func (p *Puzzle) NumPieces() int { return p.count }

// Player returns the index of the piece the player starts with.
func (p *Puzzle) Player() int { return p.player }

// Kind returns the kind of piece i, or NoKind if there is no such piece.
func (p *Puzzle) Kind(i int) chess.Kind {
	if i < 0 || i >= p.count {
		return chess.NoKind
	}
	return p.kinds[i]
}

// Square returns the square of piece i, or NoSquare if there is no such piece.
func (p *Puzzle) Square(i int) chess.Square {
	if i < 0 || i >= p.count {
		return chess.NoSquare
	}
	return p.squares[i]
}

// PieceAt returns the index of the piece on sq, or NoPiece.
func (p *Puzzle) PieceAt(sq chess.Square) int {
	if !sq.Valid() {
		return NoPiece
	}
	return int(p.pieceAt[sq])
}

// Occupied returns the squares holding a piece.
func (p *Puzzle) Occupied() chess.SquareSet {
	var s chess.SquareSet
	for i := 0; i < p.count; i++ {
		s = s.With(p.squares[i])
	}
	return s
}

// Layout returns the structured form of the puzzle.
func (p *Puzzle) Layout() Layout {
	l := Layout{
		Obstacles: p.obstacles,
		Pieces:    make(map[chess.Square]chess.Kind, p.count),
		Player:    p.squares[p.player],
	}
	for i := 0; i < p.count; i++ {
		l.Pieces[p.squares[i]] = p.kinds[i]
	}
	return l
}

// Describe returns a short name for piece i such as "Rb3".
func (p *Puzzle) Describe(i int) string {
	if i < 0 || i >= p.count {
		return fmt.Sprintf("piece %d", i)
	}
	return fmt.Sprintf("%c%s", p.kinds[i].Letter(), p.squares[i])
}

package puzzle

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chainsolve-go/internal/chess"
	"github.com/lgbarn/chainsolve-go/internal/errors"
)

func TestNewAssignsIndicesInSquareOrder(t *testing.T) {
	p, err := New(Layout{
		Obstacles: chess.SetOf(20),
		Pieces: map[chess.Square]chess.Kind{
			63: chess.Pawn,
			0:  chess.Rook,
			28: chess.Knight,
			9:  chess.Bishop,
		},
		Player: 28,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if p.NumPieces() != 4 {
		t.Fatalf("NumPieces() = %d; want 4", p.NumPieces())
	}
	wantSquares := []chess.Square{0, 9, 28, 63}
	wantKinds := []chess.Kind{chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}
	for i := range wantSquares {
		if got := p.Square(i); got != wantSquares[i] {
			t.Errorf("Square(%d) = %s; want %s", i, got, wantSquares[i])
		}
		if got := p.Kind(i); got != wantKinds[i] {
			t.Errorf("Kind(%d) = %v; want %v", i, got, wantKinds[i])
		}
	}
	if p.Player() != 2 {
		t.Errorf("Player() = %d; want 2", p.Player())
	}
	if p.Obstacles() != chess.SetOf(20) {
		t.Errorf("Obstacles() = %x", uint64(p.Obstacles()))
	}
	if p.Occupied() != chess.SetOf(0, 9, 28, 63) {
		t.Errorf("Occupied() = %x", uint64(p.Occupied()))
	}
}

func TestPieceAtIsInverseOfSquare(t *testing.T) {
	p := MustParse("rnbqkbnr/pppppppp/8/8/8/8/8/RNB1KBNR e1")
	if p.NumPieces() != 23 {
		t.Fatalf("NumPieces() = %d", p.NumPieces())
	}
	for i := 0; i < p.NumPieces(); i++ {
		if got := p.PieceAt(p.Square(i)); got != i {
			t.Errorf("PieceAt(Square(%d)) = %d", i, got)
		}
	}
	for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
		i := p.PieceAt(sq)
		if i == NoPiece {
			if p.Occupied().Has(sq) {
				t.Errorf("occupied square %s has no piece", sq)
			}
			continue
		}
		if p.Square(i) != sq {
			t.Errorf("Square(PieceAt(%s)) = %s", sq, p.Square(i))
		}
	}
}

func TestNewErrors(t *testing.T) {
	tooMany := make(map[chess.Square]chess.Kind)
	for sq := chess.Square(0); sq < MaxPieces+1; sq++ {
		tooMany[sq] = chess.Pawn
	}

	tests := []struct {
		name   string
		layout Layout
		want   error
	}{
		{
			name:   "no player",
			layout: Layout{Pieces: map[chess.Square]chess.Kind{0: chess.Rook}, Player: chess.NoSquare},
			want:   errors.ErrNoPlayerPiece,
		},
		{
			name:   "player on empty square",
			layout: Layout{Pieces: map[chess.Square]chess.Kind{0: chess.Rook}, Player: 5},
			want:   errors.ErrNoPlayerPiece,
		},
		{
			name:   "too many pieces",
			layout: Layout{Pieces: tooMany, Player: 0},
			want:   errors.ErrTooManyPieces,
		},
		{
			name:   "absent kind",
			layout: Layout{Pieces: map[chess.Square]chess.Kind{0: chess.NoKind}, Player: 0},
			want:   errors.ErrUnknownPiece,
		},
		{
			name:   "out of range kind",
			layout: Layout{Pieces: map[chess.Square]chess.Kind{0: chess.Kind(42)}, Player: 0},
			want:   errors.ErrUnknownPiece,
		},
		{
			name:   "piece on obstacle",
			layout: Layout{Obstacles: chess.SetOf(0), Pieces: map[chess.Square]chess.Kind{0: chess.Rook}, Player: 0},
			want:   errors.ErrInvalidLayout,
		},
		{
			name:   "square off the board",
			layout: Layout{Pieces: map[chess.Square]chess.Kind{70: chess.Rook}, Player: 70},
			want:   errors.ErrInvalidLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.layout)
			if !stderrors.Is(err, tt.want) {
				t.Fatalf("New() error = %v; want %v", err, tt.want)
			}
			if p != nil {
				t.Error("New() returned a puzzle alongside an error")
			}
		})
	}
}

func TestNewAcceptsMaxPieces(t *testing.T) {
	pieces := make(map[chess.Square]chess.Kind)
	for sq := chess.Square(0); sq < MaxPieces; sq++ {
		pieces[sq] = chess.Knight
	}
	p, err := New(Layout{Pieces: pieces, Player: MaxPieces - 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s := p.InitialState()
	if s.InHand() != MaxPieces-1 || s.RemainingCount() != MaxPieces-1 {
		t.Errorf("InitialState() = %s", s)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() did not panic")
		}
	}()
	MustNew(Layout{Player: chess.NoSquare})
}

func TestLayoutRoundTrip(t *testing.T) {
	want := Layout{
		Obstacles: chess.SetOf(24, 25),
		Pieces:    map[chess.Square]chess.Kind{0: chess.Rook, 56: chess.Pawn, 7: chess.Monarch},
		Player:    0,
	}
	p := MustNew(want)
	if diff := cmp.Diff(want, p.Layout()); diff != "" {
		t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribe(t *testing.T) {
	p := MustParse("p7/8/8/8/8/8/8/R7 a1")
	if got := p.Describe(0); got != "Ra1" {
		t.Errorf("Describe(0) = %q; want Ra1", got)
	}
	if got := p.Describe(1); got != "Pa8" {
		t.Errorf("Describe(1) = %q; want Pa8", got)
	}
	if got := p.Describe(5); got != "piece 5" {
		t.Errorf("Describe(5) = %q", got)
	}
	if p.Kind(-1) != chess.NoKind || p.Square(9) != chess.NoSquare || p.PieceAt(chess.NoSquare) != NoPiece {
		t.Error("out of range accessors should return absent values")
	}
}

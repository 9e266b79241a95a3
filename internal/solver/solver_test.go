package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lgbarn/chainsolve-go/internal/chess"
	"github.com/lgbarn/chainsolve-go/internal/errors"
	"github.com/lgbarn/chainsolve-go/internal/puzzle"
	"github.com/lgbarn/chainsolve-go/internal/testutil"
)

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		solved   bool
		captures []int
	}{
		{"rook takes pawn", testutil.RookTakesPawn, true, []int{1}},
		{"rook detours around obstacle", testutil.RookAroundObstacle, true, []int{1}},
		{"rook walled off", testutil.RookWalledOff, false, nil},
		{"knight chains to adjacent pawn", testutil.KnightBesidePawn, true, []int{1}},
		{"order matters", testutil.OrderMatters, true, []int{1, 2}},
		{"lone piece", testutil.LonePiece, true, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.MustParsePuzzle(t, tt.text)
			res := Solve(p)
			testutil.AssertEqual(t, res.Solved, tt.solved, "Solved")
			testutil.AssertEqual(t, res.Captures, tt.captures, "Captures")
			if res.Solved {
				testutil.AssertNoError(t, Verify(p, res.Captures))
			}
		})
	}
}

func TestSolveCounters(t *testing.T) {
	p := testutil.MustParsePuzzle(t, testutil.OrderMatters)
	res := Solve(p)
	testutil.AssertEqual(t, res.Levels, 2, "Levels")
	testutil.AssertEqual(t, res.Explored, 4, "Explored")

	walled := Solve(testutil.MustParsePuzzle(t, testutil.RookWalledOff))
	testutil.AssertEqual(t, walled.Explored, 1, "Explored for unsolvable puzzle")
	testutil.AssertEqual(t, walled.Levels, 1, "Levels for unsolvable puzzle")
}

func TestSolveLongChain(t *testing.T) {
	// Each rook on rank 8 can take its neighbour.
	p := testutil.MustParsePuzzle(t, "rrrrrrrr/8/8/8/8/8/8/Q7 a1")
	res := Solve(p)
	testutil.AssertTrue(t, res.Solved, "queen and rooks should clear the rank")
	testutil.AssertEqual(t, len(res.Captures), p.NumPieces()-1)
	testutil.AssertNoError(t, Verify(p, res.Captures))
}

func TestSolveMaxStates(t *testing.T) {
	p := testutil.MustParsePuzzle(t, testutil.OrderMatters)
	s := &Solver{MaxStates: 1}
	res, err := s.SolveContext(context.Background(), p)
	testutil.AssertErrorIs(t, err, errors.ErrSearchLimit)
	testutil.AssertFalse(t, res.Solved)

	s.MaxStates = 100
	res, err = s.SolveContext(context.Background(), p)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Captures, []int{1, 2})
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := testutil.MustParsePuzzle(t, testutil.OrderMatters)
	res, err := (&Solver{}).SolveContext(ctx, p)
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertFalse(t, res.Solved)
}

func TestVerifyRejects(t *testing.T) {
	p := testutil.MustParsePuzzle(t, testutil.OrderMatters)

	// Taking the bishop first strands the knight.
	err := Verify(p, []int{2, 1})
	testutil.AssertTrue(t, err != nil, "bishop cannot take the knight")
	if err != nil {
		testutil.AssertContains(t, err.Error(), "Bh1 cannot take Nc1")
	}

	err = Verify(p, []int{1})
	testutil.AssertTrue(t, err != nil, "incomplete solution")
	if err != nil {
		testutil.AssertContains(t, err.Error(), "1 pieces left")
	}

	states, err := Replay(p, []int{1, 2})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(states), 3)
	testutil.AssertTrue(t, states[2].Done())
}

// solvable is an exhaustive depth-first reference search.
func solvable(p *puzzle.Puzzle, s puzzle.State) bool {
	if s.Done() {
		return true
	}
	for _, next := range p.Successors(s) {
		if solvable(p, next) {
			return true
		}
	}
	return false
}

func randomPuzzle(r *rand.Rand) *puzzle.Puzzle {
	kinds := []chess.Kind{chess.Pawn, chess.Bishop, chess.Rook, chess.Monarch, chess.Knight}
	n := 2 + r.Intn(5)
	layout := puzzle.Layout{Pieces: make(map[chess.Square]chess.Kind)}
	var squares []chess.Square
	for len(squares) < n {
		sq := chess.Square(r.Intn(chess.NumSquares))
		if _, taken := layout.Pieces[sq]; taken {
			continue
		}
		layout.Pieces[sq] = kinds[r.Intn(len(kinds))]
		squares = append(squares, sq)
	}
	for i := 0; i < 8; i++ {
		sq := chess.Square(r.Intn(chess.NumSquares))
		if _, taken := layout.Pieces[sq]; !taken {
			layout.Obstacles = layout.Obstacles.With(sq)
		}
	}
	layout.Player = squares[r.Intn(len(squares))]
	return puzzle.MustNew(layout)
}

func TestSolveAgreesWithExhaustiveSearch(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	solved := 0
	for i := 0; i < 300; i++ {
		p := randomPuzzle(r)
		res := Solve(p)
		want := solvable(p, p.InitialState())
		if res.Solved != want {
			t.Fatalf("%s: Solved = %v; exhaustive search says %v", p.Notation(), res.Solved, want)
		}
		if !res.Solved {
			continue
		}
		solved++
		if len(res.Captures) != p.NumPieces()-1 {
			t.Errorf("%s: %d captures; want %d", p.Notation(), len(res.Captures), p.NumPieces()-1)
		}
		if err := Verify(p, res.Captures); err != nil {
			t.Errorf("%s: invalid solution %v: %v", p.Notation(), res.Captures, err)
		}
	}
	if solved == 0 {
		t.Error("no random puzzle was solvable")
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	p := testutil.MustParsePuzzle(t, "r1b1k1n1/1x1x1x1x/8/8/8/8/8/1N4Q1 b1")
	first := Solve(p)
	for i := 0; i < 5; i++ {
		testutil.AssertEqual(t, Solve(p), first)
	}
}

func BenchmarkSolve(b *testing.B) {
	p, err := puzzle.Parse("r1b1k1n1/1x1x1x1x/8/8/8/8/8/1N4Q1 b1")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Solve(p)
	}
}

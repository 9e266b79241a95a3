package testutil

import (
	"testing"

	"github.com/lgbarn/chainsolve-go/internal/puzzle"
)

// Shared puzzles used across package tests.
const (
	// RookTakesPawn has a rook on a1 and a pawn on a8.
	RookTakesPawn = "p7/8/8/8/8/8/8/R7 a1"
	// RookAroundObstacle blocks the a-file at a4; the rook detours via the b-file.
	RookAroundObstacle = "p7/8/8/8/x7/8/8/R7 a1"
	// RookWalledOff fills rank 4 with obstacles so the pawn is unreachable.
	RookWalledOff = "p7/8/8/8/xxxxxxxx/8/8/R7 a1"
	// KnightBesidePawn puts the pawn one square ahead of a knight on e4.
	KnightBesidePawn = "8/8/8/4p3/4N3/8/8/8 e4"
	// OrderMatters is only solvable if the rook takes the knight first; the
	// bishop on h1 can never reach the dark square c1.
	OrderMatters = "8/8/8/8/8/8/8/R1n4b a1"
	// LonePiece has nothing to capture.
	LonePiece = "8/8/8/8/8/8/8/N7 a1"
)

// MustParsePuzzle parses puzzle notation and calls t.Fatal if it is invalid.
func MustParsePuzzle(t testing.TB, text string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse test puzzle %q: %v", text, err)
	}
	return p
}

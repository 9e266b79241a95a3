package engine

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chainsolve-go/internal/chess"
)

// DirectCaptures returns the targets that a piece on from could take with a
// single ordinary chess move, blocked by obstacles and other targets. The
// result is always a subset of Capturable for the same arguments.
func DirectCaptures(kind chess.Kind, from chess.Square, obstacles, targets chess.SquareSet) chess.SquareSet {
	if !from.Valid() {
		return chess.EmptySet
	}
	blockers := uint64(obstacles.Or(targets))
	var attacks chess.SquareSet
	switch kind {
	case chess.Rook:
		attacks = chess.SquareSet(dragontoothmg.CalculateRookMoveBitboard(uint8(from), blockers))
	case chess.Bishop:
		attacks = chess.SquareSet(dragontoothmg.CalculateBishopMoveBitboard(uint8(from), blockers))
	case chess.Monarch:
		attacks = chess.SquareSet(dragontoothmg.CalculateRookMoveBitboard(uint8(from), blockers) |
			dragontoothmg.CalculateBishopMoveBitboard(uint8(from), blockers))
	default:
		attacks = CaptureStep(kind, chess.SetOf(from))
	}
	return attacks.And(targets)
}

// Package engine generates slide and capture steps for each piece kind and
// computes which targets a piece can capture under the capture-chain rule.
package engine

import "github.com/lgbarn/chainsolve-go/internal/chess"

// SlideStep returns every square reachable by one non-capturing step of a
// piece of the given kind standing on any square of from. Obstacles are not
// considered.
func SlideStep(kind chess.Kind, from chess.SquareSet) chess.SquareSet {
	switch kind {
	case chess.Pawn:
		return pawnPush(from)
	case chess.Bishop:
		return bishopStep(from)
	case chess.Rook:
		return rookStep(from)
	case chess.Monarch:
		return rookStep(from) | bishopStep(from)
	case chess.Knight:
		return knightJump(from)
	default:
		return chess.EmptySet
	}
}

// CaptureStep returns every square a piece of the given kind could capture
// on from any square of from. Only the pawn differs from SlideStep.
func CaptureStep(kind chess.Kind, from chess.SquareSet) chess.SquareSet {
	if kind == chess.Pawn {
		return pawnCapture(from)
	}
	return SlideStep(kind, from)
}

// pawnPush moves one rank forward, towards higher indices.
func pawnPush(from chess.SquareSet) chess.SquareSet {
	return from.Shl(8)
}

// pawnCapture steps onto the two forward diagonals.
func pawnCapture(from chess.SquareSet) chess.SquareSet {
	return from.And(chess.NotFileA).Shl(7) |
		from.And(chess.NotFileH).Shl(9)
}

func rookStep(from chess.SquareSet) chess.SquareSet {
	return from.Shl(8) |
		from.Shr(8) |
		from.And(chess.NotFileA).Shr(1) |
		from.And(chess.NotFileH).Shl(1)
}

func bishopStep(from chess.SquareSet) chess.SquareSet {
	return from.And(chess.NotFileA).Shl(7) |
		from.And(chess.NotFileH).Shl(9) |
		from.And(chess.NotFileA).Shr(9) |
		from.And(chess.NotFileH).Shr(7)
}

func knightJump(from chess.SquareSet) chess.SquareSet {
	// Two ranks, one file.
	vertical := from.And(chess.NotFileH).Shl(17) |
		from.And(chess.NotFileA).Shl(15) |
		from.And(chess.NotFileH).Shr(15) |
		from.And(chess.NotFileA).Shr(17)
	// One rank, two files.
	horizontal := from.And(chess.NotFilesGH).Shl(10) |
		from.And(chess.NotFilesAB).Shl(6) |
		from.And(chess.NotFilesGH).Shr(6) |
		from.And(chess.NotFilesAB).Shr(10)
	return vertical | horizontal
}

package engine

import "github.com/lgbarn/chainsolve-go/internal/chess"

// Capturable returns the targets a piece of the given kind can capture
// starting from start. The piece may take any number of slide steps through
// permeable squares (neither obstacles nor targets) and must then make exactly
// one capture step onto a target.
func Capturable(kind chess.Kind, start, obstacles, targets chess.SquareSet) chess.SquareSet {
	return CaptureStep(kind, Reachable(kind, start, obstacles, targets)).And(targets)
}

// Reachable returns every square the piece can stand on before its capturing
// step. The flood is monotone over 64 bits, so it ends within 64 rounds.
func Reachable(kind chess.Kind, start, obstacles, targets chess.SquareSet) chess.SquareSet {
	permeable := obstacles.Or(targets).Not()
	reachable := start.And(permeable)
	for {
		next := reachable.Or(SlideStep(kind, reachable)).And(permeable)
		if next == reachable {
			return reachable
		}
		reachable = next
	}
}

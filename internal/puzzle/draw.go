package puzzle

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chainsolve-go/internal/chess"
)

// Draw renders the board in state s, rank 8 first. Obstacles are '#', the
// piece in hand is an upper-case letter, pieces still to be captured are
// lower case and everything else is '.'.
func (p *Puzzle) Draw(s State) string {
	var sb strings.Builder
	hand := s.InHand()
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(chess.RankBase + rank))
		sb.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(file, rank)
			i := p.PieceAt(sq)
			switch {
			case p.obstacles.Has(sq):
				sb.WriteByte('#')
			case i == NoPiece:
				sb.WriteByte('.')
			case i == hand:
				sb.WriteByte(p.kinds[i].Letter())
			case s.Has(i):
				sb.WriteRune(unicode.ToLower(rune(p.kinds[i].Letter())))
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}

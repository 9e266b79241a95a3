package puzzle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chainsolve-go/internal/chess"
	"github.com/lgbarn/chainsolve-go/internal/errors"
)

// Parse reads a puzzle in text notation: a board field followed by the
// square of the player's piece, for example
//
//	p7/8/8/8/8/8/8/R7 a1
//
// The board field lists ranks 8 to 1 separated by '/', files a to h. A digit
// 1-8 skips that many empty squares, X marks an obstacle and P, B, R, N, K or
// Q (either case) places a piece. K and Q both denote a Monarch.
func Parse(text string) (*Puzzle, error) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
		return nil, &errors.ParseError{Err: errors.ErrInvalidNotation, Expected: "board"}
	case 1:
		return nil, &errors.ParseError{
			Err:      errors.ErrNoPlayerPiece,
			Column:   len(text) + 1,
			Expected: "player square",
		}
	case 2:
	default:
		return nil, &errors.ParseError{
			Err:    errors.ErrInvalidNotation,
			Column: fieldColumn(text, 2),
			Got:    strconv.Quote(fields[2]),
		}
	}

	player, err := chess.ParseSquare(fields[1])
	if err != nil {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Column:   fieldColumn(text, 1),
			Expected: "player square",
			Got:      strconv.Quote(fields[1]),
		}
	}
	return ParseWithPlayer(fields[0], player)
}

// fieldColumn returns the 1-based column where the n-th whitespace
// separated field of text starts, counting fields from 0 as strings.Fields
// does.
func fieldColumn(text string, n int) int {
	inField := false
	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			inField = false
		case !inField:
			if n == 0 {
				return i + 1
			}
			n--
			inField = true
		}
	}
	return len(text) + 1
}

// ParseWithPlayer reads a board field and starts the player on the piece at
// player.
func ParseWithPlayer(board string, player chess.Square) (*Puzzle, error) {
	layout, err := parseBoard(board)
	if err != nil {
		return nil, err
	}
	layout.Player = player
	return New(layout)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Puzzle {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// parseBoard parses the board field into a layout without a player square.
func parseBoard(board string) (Layout, error) {
	layout := Layout{Pieces: make(map[chess.Square]chess.Kind), Player: chess.NoSquare}
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(board); i++ {
		c := board[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return layout, rankWidthError(i, rank, file)
			}
			if rank == 0 {
				return layout, &errors.ParseError{Err: errors.ErrInvalidNotation, Column: i + 1, Expected: "8 ranks", Got: "more"}
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return layout, rankWidthError(i, rank, file)
			}
		default:
			if file >= chess.BoardSize {
				return layout, rankWidthError(i, rank, file+1)
			}
			sq := chess.SquareAt(file, rank)
			if c == 'X' || c == 'x' {
				layout.Obstacles = layout.Obstacles.With(sq)
			} else if kind, ok := chess.KindFromLetter(c); ok {
				layout.Pieces[sq] = kind
			} else {
				err := errors.ErrInvalidNotation
				if unicode.IsLetter(rune(c)) {
					err = errors.ErrUnknownPiece
				}
				return layout, &errors.ParseError{Err: err, Column: i + 1, Got: strconv.QuoteRune(rune(c))}
			}
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return layout, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Column:   len(board) + 1,
			Expected: "8 ranks of 8 files",
			Got:      fmt.Sprintf("%d ranks", chess.BoardSize-rank),
		}
	}
	return layout, nil
}

func rankWidthError(i, rank, file int) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Column:   i + 1,
		Expected: fmt.Sprintf("8 files on rank %d", rank+1),
		Got:      strconv.Itoa(file),
	}
}

// Notation returns the puzzle in text notation. The player's piece is
// written in upper case and every other piece in lower case.
func (p *Puzzle) Notation() string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(file, rank)
			var c byte
			switch i := p.PieceAt(sq); {
			case p.obstacles.Has(sq):
				c = 'X'
			case i == NoPiece:
				empty++
				continue
			case i == p.player:
				c = p.kinds[i].Letter()
			default:
				c = byte(unicode.ToLower(rune(p.kinds[i].Letter())))
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.squares[p.player].String())
	return sb.String()
}

package game

import (
	"fmt"
	"strings"
)

// Encode returns the canonical encoding of the position: the side to move
// ('A' or 'D') followed by one letter per square in index order ('A'
// attacker, 'D' defender, 'K' king, '-' empty). Two positions are the same
// for repetition purposes exactly when their encodings are equal.
func (b *Board) Encode() string {
	k := b.key()
	return string(k[:])
}

// Decode builds a board from an encoding produced by Encode. The board has
// no history and no move limit.
func Decode(s string) (*Board, error) {
	if len(s) != NumSquares+1 {
		return nil, fmt.Errorf("%w: encoding has %d characters, want %d", ErrInvalidPosition, len(s), NumSquares+1)
	}
	var turn Side
	switch s[0] {
	case 'A':
		turn = AttackerSide
	case 'D':
		turn = DefenderSide
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidPosition, s[0])
	}
	pieces := make(map[Square]Piece)
	for i := 0; i < NumSquares; i++ {
		p, ok := pieceFromLetter(s[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: piece %q at %s", ErrInvalidPosition, s[i+1], Square(i))
		}
		if p != Empty {
			pieces[Square(i)] = p
		}
	}
	return NewBoardFrom(turn, pieces)
}

// Format renders the board with row 9 at the top. With coordinates, row
// numbers run down the left and column letters along the bottom.
func (b *Board) Format(coordinates bool) string {
	var out strings.Builder
	for r := Size - 1; r >= 0; r-- {
		if coordinates {
			fmt.Fprintf(&out, "%2d", r+1)
		} else {
			out.WriteString("  ")
		}
		for c := 0; c < Size; c++ {
			out.WriteByte(' ')
			out.WriteByte(b.cells[Sq(c, r)].Letter())
		}
		out.WriteByte('\n')
	}
	if coordinates {
		out.WriteString("  ")
		for c := byte('a'); c < 'a'+Size; c++ {
			out.WriteByte(' ')
			out.WriteByte(c)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func (b *Board) String() string {
	return b.Format(true)
}

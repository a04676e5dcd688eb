package game

import (
	"fmt"
	"strings"
)

// Move relocates the piece on From to To.
type Move struct {
	From Square
	To   Square
}

// Mv returns the move from-to.
func Mv(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove parses move text such as "e2-e4".
func ParseMove(s string) (Move, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	f, err := ParseSquare(from)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	t, err := ParseSquare(to)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	return Mv(f, t), nil
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

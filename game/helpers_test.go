package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// position builds a board from placements such as "Ae5" (attacker on e5),
// "De4" or "Kd5".
func position(t *testing.T, turn Side, placements ...string) *Board {
	t.Helper()
	pieces := make(map[Square]Piece, len(placements))
	for _, pl := range placements {
		require.Len(t, pl, 3, "placement %q", pl)
		p, ok := pieceFromLetter(pl[0])
		require.True(t, ok, "placement %q has an unknown piece", pl)
		sq, err := ParseSquare(pl[1:])
		require.NoError(t, err)
		pieces[sq] = p
	}
	b, err := NewBoardFrom(turn, pieces)
	require.NoError(t, err)
	return b
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	square, err := ParseSquare(s)
	require.NoError(t, err)
	return square
}

func mv(t *testing.T, s string) Move {
	t.Helper()
	move, err := ParseMove(s)
	require.NoError(t, err)
	return move
}

func play(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		require.NoError(t, b.Apply(mv(t, m)), "applying %s", m)
	}
}

package agent

import (
	"fmt"

	"tablut/experiments/metrics"
	"tablut/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
// Agents with the same seed play the same moves in the same positions.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := b.LegalMoves(b.Turn())
	if b.Winner() != game.NoSide || len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("no move for %s: game is decided", b.Turn())
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

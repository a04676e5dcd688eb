package agent

import (
	"tablut/experiments/metrics"
	"tablut/game"
)

type Agent interface {
	// FindMove returns a move for the side to move in b and performance
	// metrics (if collected). b must not be modified.
	FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error)
}

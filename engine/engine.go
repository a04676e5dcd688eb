package engine

import (
	"errors"

	"tablut/experiments/metrics"
	"tablut/game"
)

// ErrInvalidConfig indicates a game configuration that cannot be run.
var ErrInvalidConfig = errors.New("invalid configuration")

type Engine interface {
	// Run plays the game till there's a winner or a max number of turns is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

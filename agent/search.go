package agent

import (
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/searcher"
)

type searchAgent struct {
	search *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the alpha-beta search's choice.
func NewSearchAgent(search *searcher.AlphaBeta) Agent {
	return searchAgent{search: search}
}

func (a searchAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	return a.search.FindMove(b)
}

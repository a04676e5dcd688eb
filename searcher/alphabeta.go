package searcher

import (
	"errors"
	"fmt"
	"math"

	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/meta"
)

// ErrTerminalPosition is returned when asked to search a decided position.
var ErrTerminalPosition = errors.New("position is terminal")

const Infinity = math.MaxInt

type Option func(a *AlphaBeta)

// AlphaBeta is a fixed-depth minimax search with alpha-beta pruning. Scores
// are from the defenders' point of view: defenders maximize, attackers
// minimize.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		depth:    meta.DefaultSearchDepth,
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *AlphaBeta) Depth() int {
	return a.depth
}

// FindMove returns the best move for the side to move in b. b itself is
// not modified: the search runs on a private copy.
func (a *AlphaBeta) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	if b.Winner() != game.NoSide {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s has already won", ErrTerminalPosition, b.Winner())
	}
	moves := b.LegalMoves(b.Turn())
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s has no legal moves", ErrTerminalPosition, b.Turn())
	}

	a.metrics.Start(a.depth, a.evaluate)
	a.metrics.AddNode()
	board := b.Copy()
	sense := senseOf(board.Turn())

	best := moves[0]
	bestScore := -sense * Infinity
	alpha, beta := -Infinity, Infinity
	for _, move := range moves {
		a.apply(board, move)
		score := a.search(board, a.depth-1, -sense, alpha, beta)
		board.Undo()

		if sense*score > sense*bestScore {
			best, bestScore = move, score
		}
		if sense > 0 {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if alpha >= beta {
			a.metrics.AddCutoff()
			break
		}
	}

	return best, a.metrics.Complete(bestScore), nil
}

// search returns the minimax value of b to the given depth within the
// window [alpha, beta]. sense is +1 when the defenders are to move.
func (a *AlphaBeta) search(b *game.Board, depth, sense, alpha, beta int) int {
	a.metrics.AddNode()
	if depth <= 0 || b.Winner() != game.NoSide {
		a.metrics.AddLeaf()
		return a.evaluate(b)
	}
	moves := b.LegalMoves(b.Turn())
	if len(moves) == 0 { // Only set-up positions lack both moves and a winner
		a.metrics.AddLeaf()
		return a.evaluate(b)
	}

	if sense > 0 {
		best := -Infinity
		for _, move := range moves {
			a.apply(b, move)
			best = max(best, a.search(b, depth-1, -sense, alpha, beta))
			b.Undo()
			alpha = max(alpha, best)
			if alpha >= beta {
				a.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := Infinity
	for _, move := range moves {
		a.apply(b, move)
		best = min(best, a.search(b, depth-1, -sense, alpha, beta))
		b.Undo()
		beta = min(beta, best)
		if alpha >= beta {
			a.metrics.AddCutoff()
			break
		}
	}
	return best
}

func (a *AlphaBeta) apply(b *game.Board, move game.Move) {
	if err := b.Apply(move); err != nil {
		panic(fmt.Sprintf("enumerated move %s rejected: %v", move, err))
	}
}

func senseOf(side game.Side) int {
	if side == game.DefenderSide {
		return 1
	}
	return -1
}

package engine

import (
	"fmt"
	"time"

	"tablut/agent"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/gamemaster"
	"tablut/meta"
	"tablut/utils"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithObserver calls observe with the board after every move.
func WithObserver(observe func(move game.Move, b *game.Board)) Option {
	return func(e *LocalEngine) {
		if observe != nil {
			e.observe = observe
		}
	}
}

var _ Engine = (*LocalEngine)(nil)

// LocalEngine alternates the agents of both sides on one session.
type LocalEngine struct {
	session  *gamemaster.Session
	agents   map[game.Side]agent.Agent
	maxTurns int
	observe  func(move game.Move, b *game.Board)
}

func NewLocalEngine(session *gamemaster.Session, agents map[game.Side]agent.Agent, options ...Option) *LocalEngine {
	for _, side := range []game.Side{game.AttackerSide, game.DefenderSide} {
		if agents[side] == nil {
			panic(fmt.Sprintf("no agent for the %s side", side))
		}
	}

	e := &LocalEngine{
		session:  session,
		agents:   agents,
		maxTurns: meta.MaxTurns,
		observe:  func(game.Move, *game.Board) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found, the turn cap is
// reached or an agent fails to produce a move.
func (e *LocalEngine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:           e.session.ID,
		StartingSide: e.session.Turn(),
		StartTime:    time.Now(),
	}
	logger := log.With().Str("game", e.session.ID).Logger()
	logger.Info().Msgf("%s is starting", gameMetric.StartingSide)

	var moveMetrics []metrics.MoveMetric
	turn := 1
	for ; e.session.Winner() == game.NoSide && turn <= e.maxTurns; turn++ {
		board := e.session.Board()
		side := board.Turn()

		move, searchMetric, err := e.agents[side].FindMove(board)
		if err != nil {
			logger.Error().Err(err).Int("ply", turn).Msgf("%s agent failed to move, abandoning game", side)
			break
		}

		legal := board.LegalMoves(side)
		if !utils.Contains(legal, move) {
			logger.Warn().Stringer("move", move).Msgf("%s agent returned an illegal move, playing %s instead", side, legal[0])
			move = legal[0]
		}
		if err := e.session.Play(move); err != nil {
			panic(fmt.Sprintf("legal move %s rejected: %v", move, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Side:         side,
			Move:         move,
			SearchMetric: searchMetric,
		})
		logger.Info().Int("ply", turn).Stringer("side", side).Stringer("move", move).Msg("played")
		logger.Debug().Int("nodes", searchMetric.Nodes).Int("cutoffs", searchMetric.Cutoffs).
			Int("score", searchMetric.Score).Dur("duration", searchMetric.Duration).Msg("search")
		e.observe(move, e.session.Board())
	}

	winner := e.session.Winner()
	gameMetric.Winner = winner
	gameMetric.Repeated = e.session.RepeatedPosition()
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if winner != game.NoSide {
		logger.Info().Bool("repeated", gameMetric.Repeated).Msgf("game ended with winner: %s", winner)
	} else {
		logger.Info().Msgf("stopped after %d moves with no winner", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics
}

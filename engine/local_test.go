package engine

import (
	"errors"
	"testing"

	"tablut/agent"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/gamemaster"
	"tablut/searcher"

	"github.com/stretchr/testify/require"
)

// scriptedAgent plays moves in order, then fails.
type scriptedAgent struct {
	moves []game.Move
}

func (a *scriptedAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	if len(a.moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, errors.New("script exhausted")
	}
	m := a.moves[0]
	a.moves = a.moves[1:]
	return m, metrics.SearchMetric{Nodes: 1}, nil
}

func script(t *testing.T, moves ...string) *scriptedAgent {
	t.Helper()
	a := &scriptedAgent{}
	for _, s := range moves {
		m, err := game.ParseMove(s)
		require.NoError(t, err)
		a.moves = append(a.moves, m)
	}
	return a
}

func newSession(t *testing.T, options ...gamemaster.Option) *gamemaster.Session {
	t.Helper()
	s, err := gamemaster.NewSession(options...)
	require.NoError(t, err)
	return s
}

func TestNewLocalEngine(t *testing.T) {
	require.Panics(t, func() {
		NewLocalEngine(newSession(t), map[game.Side]agent.Agent{game.AttackerSide: agent.NewRandomAgent(1)})
	}, "Both sides need an agent")
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing a game to the end", func(t *testing.T) {
		session := newSession(t)
		e := NewLocalEngine(session, map[game.Side]agent.Agent{
			game.AttackerSide: agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMetrics())),
			game.DefenderSide: agent.NewRandomAgent(5),
		})

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, session.Winner(), winner)
		require.Equal(t, session.ID, gameMetric.ID)
		require.Equal(t, game.AttackerSide, gameMetric.StartingSide)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, session.MoveCount(), gameMetric.TotalMoves)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if mm.Side == game.AttackerSide {
				require.Positive(t, mm.Nodes, "Search agent should report metrics")
			}
		}
	})

	t.Run("stopping at the turn cap", func(t *testing.T) {
		session := newSession(t)
		e := NewLocalEngine(session, map[game.Side]agent.Agent{
			game.AttackerSide: agent.NewRandomAgent(1),
			game.DefenderSide: agent.NewRandomAgent(2),
		}, WithMaxTurns(3))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.NoSide, winner)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Equal(t, game.DefenderSide, session.Turn())
	})

	t.Run("replacing an illegal move with the first legal move", func(t *testing.T) {
		session := newSession(t)
		first := game.NewBoard().LegalMoves(game.AttackerSide)[0]
		var observed []game.Move
		e := NewLocalEngine(session, map[game.Side]agent.Agent{
			game.AttackerSide: script(t, "c5-c6"),
			game.DefenderSide: script(t),
		}, WithObserver(func(m game.Move, b *game.Board) {
			observed = append(observed, m)
		}))

		winner, _, moveMetrics := e.Run()

		require.Equal(t, game.NoSide, winner, "Defender script fails, abandoning the game")
		require.Len(t, moveMetrics, 1)
		require.Equal(t, first, moveMetrics[0].Move)
		require.Equal(t, []game.Move{first}, observed)
		require.Equal(t, 1, session.MoveCount())
	})

	t.Run("recording a repetition", func(t *testing.T) {
		session := newSession(t)
		e := NewLocalEngine(session, map[game.Side]agent.Agent{
			game.AttackerSide: script(t, "a4-b4", "b4-a4"),
			game.DefenderSide: script(t, "c5-c6", "c6-c5"),
		})

		winner, gameMetric, _ := e.Run()

		require.Equal(t, game.AttackerSide, winner)
		require.True(t, gameMetric.Repeated)
		require.Equal(t, 4, gameMetric.TotalMoves)
	})
}

package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"tablut/engine"
	"tablut/experiments/metrics"

	"github.com/stretchr/testify/require"
)

var (
	searchConfig = metrics.AgentConfig{ID: 1, Kind: metrics.SearchAgent, Depth: 1, Evaluation: "material"}
	randomConfig = metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: 4}
)

func TestNewAgent(t *testing.T) {
	for _, config := range []metrics.AgentConfig{
		searchConfig,
		randomConfig,
		{ID: 3, Kind: metrics.SearchAgent}, // Defaults
	} {
		a, err := NewAgent(config, 0)
		require.NoError(t, err)
		require.NotNil(t, a)
	}

	_, err := NewAgent(metrics.AgentConfig{ID: 4, Kind: "oracle"}, 0)
	require.ErrorIs(t, err, engine.ErrInvalidConfig)

	_, err = NewAgent(metrics.AgentConfig{ID: 5, Kind: metrics.SearchAgent, Evaluation: "mobility"}, 0)
	require.ErrorIs(t, err, engine.ErrInvalidConfig)
}

func TestRunMatch(t *testing.T) {
	t.Run("alternating sides and writing records", func(t *testing.T) {
		root := t.TempDir()

		result, err := RunMatch(root, "smoke", [2]metrics.AgentConfig{searchConfig, randomConfig}, 2, 0, engine.WithMaxTurns(20))

		require.NoError(t, err)
		total := result.Undecided
		for _, wins := range result.Wins {
			total += wins
		}
		require.Equal(t, 2, total, "Every game is a win or undecided")
		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(result.Dir, file))
			require.NoError(t, err, "%s should be written", file)
		}
		require.Equal(t, filepath.Join(root, "smoke"), filepath.Dir(result.Dir))
	})

	t.Run("skipping records without a root", func(t *testing.T) {
		result, err := RunMatch("", "quiet", [2]metrics.AgentConfig{randomConfig, randomConfig}, 1, 0, engine.WithMaxTurns(4))

		require.NoError(t, err)
		require.Empty(t, result.Dir)
		require.Equal(t, 1, result.Undecided+result.Wins[randomConfig.ID])
	})

	t.Run("deciding games at the move limit", func(t *testing.T) {
		result, err := RunMatch("", "limited", [2]metrics.AgentConfig{randomConfig, searchConfig}, 2, 3)

		require.NoError(t, err)
		require.Zero(t, result.Undecided, "Every game ends by the sixth move")
	})

	t.Run("rejecting invalid configs", func(t *testing.T) {
		_, err := RunMatch("", "bad", [2]metrics.AgentConfig{searchConfig, {Kind: "?"}}, 1, 0)
		require.ErrorIs(t, err, engine.ErrInvalidConfig)

		_, err = RunMatch("", "bad", [2]metrics.AgentConfig{searchConfig, randomConfig}, 0, 0)
		require.ErrorIs(t, err, engine.ErrInvalidConfig)
	})
}

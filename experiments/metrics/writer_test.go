package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tablut/game"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "match")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "match"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: SearchAgent, Depth: 2, Evaluation: "material"},
			{ID: 2, Kind: RandomAgent, Seed: 9},
		}))

		want := [][]string{
			{"id", "kind", "depth", "evaluation", "seed"},
			{"1", "ai", "2", "material", "0"},
			{"2", "random", "0", "", "9"},
		}
		require.Empty(t, cmp.Diff(want, readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))))
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			Number:   1,
			Attacker: 2,
			Defender: 1,
			GameMetric: GameMetric{
				ID:           "game-1",
				StartingSide: game.AttackerSide,
				Winner:       game.DefenderSide,
				StartTime:    start,
				EndTime:      start.Add(3 * time.Second),
				Duration:     3 * time.Second,
				TotalMoves:   41,
			},
		}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "game-1", "2", "1", "attacker", "defender", "false", "41",
			"2024-03-01T12:00:00Z", "2024-03-01T12:00:03Z", "3s"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         1,
				Side:         game.AttackerSide,
				Move:         game.Mv(game.Sq(0, 3), game.Sq(1, 3)),
				SearchMetric: SearchMetric{Depth: 1, Nodes: 81, Leaves: 80, Score: -7},
			},
		}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "attacker", "a4-b4", "1", "81", "80", "0", "-7", "0s"}, rows[1])
	})
}

package experiments

import (
	"fmt"

	"tablut/agent"
	"tablut/engine"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/gamemaster"
	"tablut/searcher"

	"github.com/rs/zerolog/log"
)

// Result counts the games won by each agent config ID. Games stopped
// without a winner are counted under Undecided.
type Result struct {
	Wins      map[int]int
	Undecided int
	Dir       string // where the records were written, empty if not written
}

// RunMatch plays games between two agent configs, alternating which config
// plays the attackers, and writes the records beneath root when root is not
// empty. A positive moveLimit decides each game after that many moves a side.
func RunMatch(root, name string, configs [2]metrics.AgentConfig, games, moveLimit int, options ...engine.Option) (Result, error) {
	if games <= 0 {
		return Result{}, fmt.Errorf("%w: %d games", engine.ErrInvalidConfig, games)
	}
	for _, config := range configs {
		if _, err := NewAgent(config, 0); err != nil {
			return Result{}, err
		}
	}

	result := Result{Wins: make(map[int]int)}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s match between agent1=%+v and agent2=%+v...", name, configs[0], configs[1])
	for i := 0; i < games; i++ {
		attacker, defender := configs[i%2], configs[(i+1)%2]
		log.Info().Msgf("starting game %d of %d with attacker=%d defender=%d...", i+1, games, attacker.ID, defender.ID)

		winner, gameMetric, moveMetrics, err := runGame(attacker, defender, uint64(i), moveLimit, options...)
		if err != nil {
			return Result{}, err
		}
		switch winner {
		case game.AttackerSide:
			result.Wins[attacker.ID]++
		case game.DefenderSide:
			result.Wins[defender.ID]++
		default:
			result.Undecided++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			Number:     i + 1,
			Attacker:   attacker.ID,
			Defender:   defender.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, games, winner)
	}
	log.Info().Msgf("completed %s match", name)

	if root == "" {
		return result, nil
	}
	dir, err := writeRecords(root, name, configs[:], gameRecords, moveRecords)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

func writeRecords(root, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create match writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(attacker, defender metrics.AgentConfig, round uint64, moveLimit int, options ...engine.Option) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	attackerAgent, err := NewAgent(attacker, round)
	if err != nil {
		return game.NoSide, metrics.GameMetric{}, nil, err
	}
	defenderAgent, err := NewAgent(defender, round)
	if err != nil {
		return game.NoSide, metrics.GameMetric{}, nil, err
	}
	session, err := gamemaster.NewSession(gamemaster.WithMoveLimit(moveLimit))
	if err != nil {
		return game.NoSide, metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(session, map[game.Side]agent.Agent{
		game.AttackerSide: attackerAgent,
		game.DefenderSide: defenderAgent,
	}, options...)
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// NewAgent builds an unattended agent from config. Random agents are seeded
// with config.Seed+round so that successive games differ.
func NewAgent(config metrics.AgentConfig, round uint64) (agent.Agent, error) {
	switch config.Kind {
	case metrics.SearchAgent:
		if _, ok := game.Evaluations[config.Evaluation]; config.Evaluation != "" && !ok {
			return nil, fmt.Errorf("%w: agent %d has unknown evaluation %q", engine.ErrInvalidConfig, config.ID, config.Evaluation)
		}
		return agent.NewSearchAgent(createSearch(config)), nil
	case metrics.RandomAgent:
		return agent.NewRandomAgent(config.Seed + round), nil
	default:
		return nil, fmt.Errorf("%w: agent %d has unknown kind %q", engine.ErrInvalidConfig, config.ID, config.Kind)
	}
}

func createSearch(config metrics.AgentConfig) *searcher.AlphaBeta {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if evaluate, ok := game.Evaluations[config.Evaluation]; ok {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewAlphaBeta(options...)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"tablut/agent"
	"tablut/engine"
	"tablut/experiments"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/gamemaster"
	"tablut/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const humanAgent = "human"

type options struct {
	attacker string
	defender string
	depth    int
	eval     string
	limit    int
	games    int
	seed     uint64
	records  string
	logLevel string
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("tablut failed")
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", engine.ErrInvalidConfig, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	attacker, defender := config(1, opts.attacker, opts), config(2, opts.defender, opts)
	if opts.games > 1 {
		if opts.attacker == humanAgent || opts.defender == humanAgent {
			return fmt.Errorf("%w: matches of %d games need unattended agents", engine.ErrInvalidConfig, opts.games)
		}
		result, err := experiments.RunMatch(opts.records, "match", [2]metrics.AgentConfig{attacker, defender}, opts.games, opts.limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%d) won %d, %s (%d) won %d, %d undecided\n",
			opts.attacker, attacker.ID, result.Wins[attacker.ID], opts.defender, defender.ID, result.Wins[defender.ID], result.Undecided)
		return nil
	}

	agents := map[game.Side]agent.Agent{}
	human := agent.NewManualAgent(in, out) // Shared so both sides read the same input buffer
	for side, config := range map[game.Side]metrics.AgentConfig{game.AttackerSide: attacker, game.DefenderSide: defender} {
		if config.Kind == humanAgent {
			agents[side] = human
			continue
		}
		a, err := experiments.NewAgent(config, 0)
		if err != nil {
			return err
		}
		agents[side] = a
	}

	session, err := gamemaster.NewSession(gamemaster.WithMoveLimit(opts.limit))
	if err != nil {
		return err
	}
	e := engine.NewLocalEngine(session, agents, engine.WithObserver(func(move game.Move, b *game.Board) {
		fmt.Fprintf(out, "%s played %s\n", b.Turn().Opponent(), move)
	}))
	winner, gameMetric, _ := e.Run()

	fmt.Fprintf(out, "%s", session.Board().Format(true))
	if winner == game.NoSide {
		fmt.Fprintf(out, "no winner after %d moves\n", gameMetric.TotalMoves)
		return nil
	}
	fmt.Fprintf(out, "%s won after %d moves\n", winner, gameMetric.TotalMoves)
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("tablut", flag.ContinueOnError)
	fs.StringVar(&opts.attacker, "attacker", metrics.SearchAgent, "Attacker agent: ai, random or human")
	fs.StringVar(&opts.defender, "defender", metrics.SearchAgent, "Defender agent: ai, random or human")
	fs.IntVar(&opts.depth, "depth", meta.DefaultSearchDepth, "Search depth in plies for ai agents")
	fs.StringVar(&opts.eval, "eval", "material", "Evaluation for ai agents: material or pressure")
	fs.IntVar(&opts.limit, "limit", 0, "Moves per side before the side to move wins, 0 for no limit")
	fs.IntVar(&opts.games, "games", 1, "Number of games; more than one plays a recorded match")
	fs.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "Seed for random agents")
	fs.StringVar(&opts.records, "records", "", "Directory for match records, empty to skip writing them")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	for _, kind := range []string{opts.attacker, opts.defender} {
		if kind != metrics.SearchAgent && kind != metrics.RandomAgent && kind != humanAgent {
			return options{}, fmt.Errorf("%w: unknown agent %q", engine.ErrInvalidConfig, kind)
		}
	}
	if opts.depth < 1 {
		return options{}, fmt.Errorf("%w: depth %d", engine.ErrInvalidConfig, opts.depth)
	}
	if _, ok := game.Evaluations[opts.eval]; !ok {
		return options{}, fmt.Errorf("%w: unknown evaluation %q", engine.ErrInvalidConfig, opts.eval)
	}
	if opts.games < 1 {
		return options{}, fmt.Errorf("%w: %d games", engine.ErrInvalidConfig, opts.games)
	}
	return opts, nil
}

func config(id int, kind string, opts options) metrics.AgentConfig {
	c := metrics.AgentConfig{ID: id, Kind: kind}
	switch kind {
	case metrics.SearchAgent:
		c.Depth, c.Evaluation = opts.depth, opts.eval
	case metrics.RandomAgent:
		c.Seed = opts.seed + uint64(id)
	}
	return c
}

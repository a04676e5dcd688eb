package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"tablut/experiments/metrics"
	"tablut/game"

	"github.com/rs/zerolog/log"
)

var ErrInputClosed = errors.New("input closed")

type manualAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewManualAgent returns an agent that reads moves such as "e2-e4" from in,
// one per line. Unparsable and illegal moves are reported to out and the
// player is asked again.
func NewManualAgent(in io.Reader, out io.Writer) Agent {
	return &manualAgent{in: bufio.NewScanner(in), out: out}
}

func (a *manualAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	if b.Winner() != game.NoSide || !b.HasMove(b.Turn()) {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("no move for %s: game is decided", b.Turn())
	}
	fmt.Fprintf(a.out, "%s\n", b.Format(true))
	for {
		fmt.Fprintf(a.out, "%s to move: ", b.Turn())
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, metrics.SearchMetric{}, ErrInputClosed
		}

		move, err := game.ParseMove(a.in.Text())
		if err != nil {
			log.Debug().Err(err).Msg("unparsable move")
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		if err := b.Check(move); err != nil {
			log.Debug().Err(err).Msg("rejected move")
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

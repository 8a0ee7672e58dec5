package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"adversary/game"
	"adversary/searcher/agent"
)

var ErrNoInput = errors.New("no more input from player")

// MoveParser turns one line typed by a person into a move for state.
type MoveParser func(state game.State, input string) (game.Move, error)

// Human asks a person for every move. Input that does not parse into a legal
// move is explained and asked for again.
type Human struct {
	agent.Identity
	parse  MoveParser
	prompt string
	in     *bufio.Scanner
	out    io.Writer
}

// NewHuman creates a Human agent reading from in and writing prompts to out.
func NewHuman(name string, id game.PlayerID, parse MoveParser, prompt string, in io.Reader, out io.Writer) *Human {
	return NewHumanScanner(name, id, parse, prompt, bufio.NewScanner(in), out)
}

// NewHumanScanner is NewHuman for humans sharing one input stream, such as two
// people at the same terminal.
func NewHumanScanner(name string, id game.PlayerID, parse MoveParser, prompt string, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{
		Identity: agent.NewIdentity(name, id),
		parse:    parse,
		prompt:   prompt,
		in:       in,
		out:      out,
	}
}

func (h *Human) Evaluate(game.State) float64 {
	return 0
}

func (h *Human) MinimaxMove(state game.State, _ game.Visited) (game.Move, error) {
	for {
		fmt.Fprint(h.out, h.prompt)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return nil, fmt.Errorf("failed to read move: %w", err)
			}
			return nil, ErrNoInput
		}

		move, err := h.parse(state, h.in.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		return move, nil
	}
}

func (h *Human) AlphaBetaMove(state game.State, visited game.Visited) (game.Move, error) {
	return h.MinimaxMove(state, visited)
}

func (h *Human) TournamentMove(state game.State, visited game.Visited) (game.Move, error) {
	return h.MinimaxMove(state, visited)
}

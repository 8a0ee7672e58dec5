package gamemaster

import (
	"bufio"
	"io"
	"os"
	"sync"

	"adversary/game"
	"adversary/game/gobblet"
	"adversary/game/tictactoe"
	"adversary/meta"
	"adversary/player"
	"adversary/searcher/agent"
)

var (
	defaultRegistry *Registry
	once            sync.Once
)

// Default returns the process-wide registry holding the built-in games.
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = Builtin(os.Stdin, os.Stdout)
	})
	return defaultRegistry
}

// Builtin creates a registry with tic-tac-toe and gobblet. Human players read
// their moves from in and are prompted on out.
func Builtin(in io.Reader, out io.Writer) *Registry {
	r := NewRegistry()
	input := bufio.NewScanner(in)
	register(r, "tictactoe", func() game.State { return tictactoe.New() },
		tictactoe.Evaluate, tictactoe.ParseMove, tictactoe.Prompt, input, out)
	register(r, "gobblet", func() game.State { return gobblet.New() },
		gobblet.Evaluate, gobblet.ParseMove, gobblet.Prompt, input, out)
	return r
}

func register(r *Registry, name string, state StateFactory, evaluate game.Evaluate,
	parse player.MoveParser, prompt string, in *bufio.Scanner, out io.Writer) {
	r.RegisterGame(name, state)

	// The game was just registered, so these cannot fail.
	_ = r.RegisterAgent(name, "adv", func(n string, id game.PlayerID) agent.Agent {
		return agent.NewSearch(n, id, evaluate)
	})
	_ = r.RegisterAgent(name, "simple", func(n string, id game.PlayerID) agent.Agent {
		return agent.NewFirst(n, id)
	})
	_ = r.RegisterAgent(name, "random", func(n string, id game.PlayerID) agent.Agent {
		return agent.NewRandom(n, id, meta.RandomSeed+uint64(id))
	})
	_ = r.RegisterAgent(name, "human", func(n string, id game.PlayerID) agent.Agent {
		return player.NewHumanScanner(n, id, parse, prompt, in, out)
	})
}

package engine

import (
	"errors"
	"fmt"
	"time"

	"adversary/experiments/metrics"
	"adversary/game"
	"adversary/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var errNilMove = errors.New("agent returned no move")

type Option func(c *Controller)

func WithRenderer(renderer Renderer) Option {
	return func(c *Controller) {
		c.renderer = renderer
	}
}

func WithRecorder(recorder metrics.Recorder) Option {
	return func(c *Controller) {
		if recorder != nil {
			c.recorder = recorder
		}
	}
}

// WithMaxPlies declares a draw after n plies; 0 leaves games unbounded.
func WithMaxPlies(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxPlies = n
		}
	}
}

// WithGameName labels recorded metrics.
func WithGameName(name string) Option {
	return func(c *Controller) {
		c.gameName = name
	}
}

type binding struct {
	agent    agent.Agent
	strategy Strategy
}

// Controller plays one game at a time between two agents. It owns the canonical
// state, the repetition history, and the expansion budget re-armed every turn.
type Controller struct {
	State game.State

	players       map[game.PlayerID]binding
	visited       game.Visited
	budget        *game.Budget
	maxExpansions int
	maxPlies      int
	plies         int
	gameName      string
	renderer      Renderer
	recorder      metrics.Recorder
}

// New binds agents[i] to play with strategies[i]. The agents' IDs must match the
// state's players exactly.
func New(state game.State, agents []agent.Agent, strategies []Strategy, maxExpansions int, options ...Option) (*Controller, error) {
	c := &Controller{
		State:         state,
		visited:       game.NewVisited(),
		budget:        game.NewBudget(maxExpansions),
		maxExpansions: maxExpansions,
		recorder:      metrics.NewDummyRecorder(),
	}
	if err := c.SetupPlayers(agents, strategies); err != nil {
		return nil, err
	}
	for _, option := range options {
		option(c)
	}
	state.SetBudget(c.budget)
	return c, nil
}

// SetupPlayers rebinds the agents and their strategies without touching the
// state, so one controller can host many matches.
func (c *Controller) SetupPlayers(agents []agent.Agent, strategies []Strategy) error {
	players := c.State.Players()
	ids := make([]game.PlayerID, len(agents))
	for i, a := range agents {
		ids[i] = a.GameID()
	}
	fail := func(reason string) error {
		return &ConfigurationError{Players: players, Agents: ids, Reason: reason}
	}

	if len(agents) != len(strategies) {
		return fail(fmt.Sprintf("%d agents but %d strategies", len(agents), len(strategies)))
	}
	if len(agents) != len(players) {
		return fail(fmt.Sprintf("%d agents for %d players", len(agents), len(players)))
	}

	bindings := make(map[game.PlayerID]binding, len(agents))
	for i, a := range agents {
		if !slices.Contains(players, a.GameID()) {
			return fail(fmt.Sprintf("agent %s has unknown ID %d", a.Name(), a.GameID()))
		}
		if _, ok := bindings[a.GameID()]; ok {
			return fail(fmt.Sprintf("ID %d is bound twice", a.GameID()))
		}
		bindings[a.GameID()] = binding{agent: a, strategy: strategies[i]}
	}

	c.players = bindings
	return nil
}

// Reset returns the state to its opening position and forgets the history.
func (c *Controller) Reset() {
	c.State.Clear()
	c.State.SetBudget(c.budget)
	c.visited.Clear()
	c.plies = 0
}

func (c *Controller) Agent(player game.PlayerID) agent.Agent {
	return c.players[player].agent
}

// PlayGame plays until a win or a draw.
func (c *Controller) PlayGame() Outcome {
	id := uuid.New().String()
	start := time.Now()
	starting := c.State.NextPlayer()

	log.Info().Msgf("game %s: %s is starting", id, c.Agent(starting).Name())
	if c.renderer != nil {
		c.renderer.Start(c.State)
	}

	var outcome Outcome
	for {
		ply := c.Step()
		if c.renderer != nil {
			c.renderer.Ply(c.State, ply, c.Agent(ply.Player).Name())
		}

		if ply.Result == Win {
			outcome = Outcome{Winner: ply.Winner, WinnerName: c.Agent(ply.Winner).Name(), Reason: ply.Reason}
			log.Info().Msgf("game %s: %s wins", id, outcome.WinnerName)
			break
		}
		if ply.Result == Draw {
			outcome = Outcome{Draw: true, Reason: ply.Reason}
			log.Info().Msgf("game %s: draw", id)
			break
		}
		if c.maxPlies > 0 && c.plies >= c.maxPlies {
			outcome = Outcome{Draw: true, Reason: PlyLimit}
			log.Info().Msgf("game %s: draw after reaching the limit of %d plies", id, c.maxPlies)
			break
		}
	}
	outcome.ID = id
	outcome.Plies = c.plies

	end := time.Now()
	c.recorder.RecordGame(metrics.GameMetric{
		ID:             id,
		Game:           c.gameName,
		StartingPlayer: starting,
		Winner:         outcome.WinnerName,
		Draw:           outcome.Draw,
		Reason:         outcome.Reason.String(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     c.plies,
	})
	return outcome
}

// Step plays one turn of the player to move.
func (c *Controller) Step() Ply {
	player := c.State.NextPlayer()
	other := game.Other(c.State, player)
	ply := Ply{Player: player, Next: player}

	// A position without moves is decided by the opponent's standing alone.
	c.budget.Reset(1)
	if c.State.SuccessorMoves().Terminal() {
		ply.Reason = NoMoves
		if c.State.IsWin(other) {
			ply.Result, ply.Winner = Win, other
		} else {
			ply.Result = Draw
		}
		return ply
	}

	c.budget.Reset(c.maxExpansions)
	b := c.players[player]
	c.plies++
	start := time.Now()
	move, err := c.ask(player, b)
	ply.Move = move

	var search metrics.SearchMetric
	if reporter, ok := b.agent.(agent.SearchReporter); ok && err == nil {
		search = reporter.LastSearch()
	}

	if err != nil {
		log.Warn().Err(err).Msgf("%s failed to produce a move and forfeits", b.agent.Name())
		ply.Result, ply.Winner, ply.Reason, ply.Err = Win, other, AgentFault, err
	} else {
		c.judge(&ply, b.agent.Name())
	}

	c.recorder.RecordMove(metrics.MoveMetric{
		SearchMetric: search,
		Step:         c.plies,
		Player:       player,
		Agent:        b.agent.Name(),
		Strategy:     b.strategy.String(),
		Move:         moveString(move),
		Expansions:   c.maxExpansions - c.budget.Remaining(),
		Reason:       ply.Reason.String(),
		Duration:     time.Since(start),
	})
	return ply
}

// judge resolves the move an agent returned. The move's own methods run here,
// so a panic in them is the agent's fault.
func (c *Controller) judge(ply *Ply, name string) {
	other := game.Other(c.State, ply.Player)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("agent move panicked: %v", r)
			log.Warn().Err(err).Msgf("%s returned a malformed move and forfeits", name)
			ply.Next, ply.Cycle = ply.Player, false
			ply.Result, ply.Winner, ply.Reason, ply.Err = Win, other, AgentFault, err
		}
	}()

	switch {
	case ply.Move.IsForfeit():
		log.Warn().Msgf("%s forfeits", name)
		ply.Result, ply.Winner, ply.Reason = Win, other, Forfeit
	case !c.State.IsValidMove(ply.Move):
		log.Warn().Msgf("%s made an illegal move: %s", name, ply.Move)
		ply.Result, ply.Winner, ply.Reason = Win, other, IllegalMove
	default:
		c.apply(ply)
	}
}

func (c *Controller) apply(ply *Ply) {
	next, safeToClear, err := c.State.Move(ply.Move, true)
	if err != nil {
		log.Warn().Err(err).Msgf("%s made an illegal move: %s", c.Agent(ply.Player).Name(), ply.Move)
		ply.Result, ply.Winner, ply.Reason = Win, game.Other(c.State, ply.Player), IllegalMove
		return
	}
	ply.Next = next

	if c.State.Repeats() {
		if safeToClear {
			c.visited.Clear()
		}
		rep := c.State.RepeatedRep()
		if c.visited.Contains(rep) {
			log.Info().Msgf("position repeated after %s", ply.Move)
			c.State.HandleCycle()
			ply.Cycle = true
		} else {
			c.visited.Add(rep)
		}
	}

	if c.State.IsWin(ply.Player) {
		ply.Result, ply.Winner = Win, ply.Player
	}
}

// ask calls the agent's strategy on a private copy of the state. Panics and
// errors both come back as errors.
func (c *Controller) ask(player game.PlayerID, b binding) (move game.Move, err error) {
	defer func() {
		if r := recover(); r != nil {
			move, err = nil, fmt.Errorf("agent panicked: %v", r)
		}
	}()

	view := c.State.PlayerState(player)
	view.SetBudget(c.budget)
	visited := c.visited.Snapshot()

	switch b.strategy {
	case AlphaBeta:
		move, err = b.agent.AlphaBetaMove(view, visited)
	case Tournament:
		move, err = b.agent.TournamentMove(view, visited)
	default:
		move, err = b.agent.MinimaxMove(view, visited)
	}
	if err == nil && move == nil {
		err = errNilMove
	}
	return move, err
}

func moveString(move game.Move) string {
	if move == nil {
		return ""
	}
	// fmt survives nil receivers and panicking String methods.
	return fmt.Sprint(move)
}

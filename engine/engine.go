package engine

import (
	"fmt"
	"strings"

	"adversary/game"
)

// Strategy selects which agent method the controller calls for a player.
type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
	Tournament
)

func (s Strategy) String() string {
	switch s {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case Tournament:
		return "tournament"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "minimax":
		return Minimax, nil
	case "alphabeta":
		return AlphaBeta, nil
	case "tournament":
		return Tournament, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

type Result int

const (
	Continue Result = iota
	Win
	Draw
)

func (r Result) String() string {
	return [...]string{"continue", "win", "draw"}[r]
}

// Reason explains how a ply ended the game, if it did.
type Reason int

const (
	Normal Reason = iota
	NoMoves
	Forfeit
	IllegalMove
	AgentFault
	PlyLimit
)

func (r Reason) String() string {
	return [...]string{"", "no-moves", "forfeit", "illegal-move", "agent-fault", "ply-limit"}[r]
}

// Ply is the outcome of one turn. Move is nil when the turn ended before a
// move was obtained. Winner is only meaningful when Result is Win.
type Ply struct {
	Player game.PlayerID
	Move   game.Move
	Next   game.PlayerID
	Result Result
	Winner game.PlayerID
	Reason Reason
	Cycle  bool  // the move repeated an earlier position
	Err    error // set for AgentFault
}

// Outcome summarizes a finished game.
type Outcome struct {
	ID         string
	Winner     game.PlayerID
	WinnerName string
	Draw       bool
	Reason     Reason
	Plies      int
}

// ConfigurationError reports agents that do not cover the game's players
// exactly once each.
type ConfigurationError struct {
	Players []game.PlayerID
	Agents  []game.PlayerID
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("player IDs not covered: %s (game players %v, agent IDs %v)", e.Reason, e.Players, e.Agents)
}

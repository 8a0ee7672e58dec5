package agent

import (
	"adversary/experiments/metrics"
	"adversary/game"
)

// Agent chooses moves for one player. The state it receives is a private copy
// carrying the turn's expansion budget; visited is a snapshot of the positions
// seen since the last irreversible move.
type Agent interface {
	Name() string
	GameID() game.PlayerID
	// Evaluate scores a position from the first player's point of view.
	Evaluate(state game.State) float64
	MinimaxMove(state game.State, visited game.Visited) (game.Move, error)
	AlphaBetaMove(state game.State, visited game.Visited) (game.Move, error)
	TournamentMove(state game.State, visited game.Visited) (game.Move, error)
}

// SearchReporter is implemented by agents that search for their moves. The
// controller records the statistics of the search behind each move.
type SearchReporter interface {
	LastSearch() metrics.SearchMetric
}

// Identity carries the name and player ID every agent reports.
type Identity struct {
	name string
	id   game.PlayerID
}

func NewIdentity(name string, id game.PlayerID) Identity {
	return Identity{name: name, id: id}
}

func (i Identity) Name() string          { return i.name }
func (i Identity) GameID() game.PlayerID { return i.id }

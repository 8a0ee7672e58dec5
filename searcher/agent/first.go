package agent

import (
	"adversary/game"
	"adversary/searcher"
)

// First always plays the first legal move in generation order.
type First struct {
	Identity
}

func NewFirst(name string, id game.PlayerID) *First {
	return &First{Identity: NewIdentity(name, id)}
}

func (a *First) Evaluate(game.State) float64 {
	return 0
}

func (a *First) MinimaxMove(state game.State, _ game.Visited) (game.Move, error) {
	moves := state.SuccessorMoves().Moves
	if len(moves) == 0 {
		return nil, searcher.ErrNoMove
	}
	return moves[0], nil
}

func (a *First) AlphaBetaMove(state game.State, visited game.Visited) (game.Move, error) {
	return a.MinimaxMove(state, visited)
}

func (a *First) TournamentMove(state game.State, visited game.Visited) (game.Move, error) {
	return a.MinimaxMove(state, visited)
}

package agent

import (
	"adversary/game"
	"adversary/searcher"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly sampled legal move. A fixed seed replays the same
// choices.
type Random struct {
	Identity
	rng *rand.Rand
}

func NewRandom(name string, id game.PlayerID, seed uint64) *Random {
	return &Random{
		Identity: NewIdentity(name, id),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *Random) Evaluate(game.State) float64 {
	return 0
}

func (a *Random) MinimaxMove(state game.State, _ game.Visited) (game.Move, error) {
	return a.sample(state)
}

func (a *Random) AlphaBetaMove(state game.State, _ game.Visited) (game.Move, error) {
	return a.sample(state)
}

func (a *Random) TournamentMove(state game.State, _ game.Visited) (game.Move, error) {
	return a.sample(state)
}

func (a *Random) sample(state game.State) (game.Move, error) {
	moves := state.SuccessorMoves().Moves
	if len(moves) == 0 {
		return nil, searcher.ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], nil
}

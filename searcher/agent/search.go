package agent

import (
	"adversary/experiments/metrics"
	"adversary/game"
	"adversary/searcher"
)

type SearchOption func(a *Search)

// Search plays by minimax or alpha-beta over a static evaluation.
type Search struct {
	Identity
	evaluate   game.Evaluate
	minimax    *searcher.Searcher
	alphaBeta  *searcher.Searcher
	tournament searcher.Algorithm
	last       *searcher.Searcher
}

// WithMinimaxHorizon overrides how the minimax horizon is derived from the budget.
func WithMinimaxHorizon(policy searcher.HorizonPolicy) SearchOption {
	return func(a *Search) {
		a.minimax = searcher.NewMinimax(a.evaluate, searcher.WithHorizon(policy), searcher.WithMetrics(metrics.NewCollector()))
	}
}

// WithAlphaBetaHorizon overrides how the alpha-beta horizon is derived from the budget.
func WithAlphaBetaHorizon(policy searcher.HorizonPolicy) SearchOption {
	return func(a *Search) {
		a.alphaBeta = searcher.NewAlphaBeta(a.evaluate, searcher.WithHorizon(policy), searcher.WithMetrics(metrics.NewCollector()))
	}
}

// WithTournamentAlgorithm selects the search used for tournament play. Alpha-beta
// is the default.
func WithTournamentAlgorithm(algorithm searcher.Algorithm) SearchOption {
	return func(a *Search) {
		a.tournament = algorithm
	}
}

func NewSearch(name string, id game.PlayerID, evaluate game.Evaluate, options ...SearchOption) *Search {
	a := &Search{
		Identity:   NewIdentity(name, id),
		evaluate:   evaluate,
		minimax:    searcher.NewMinimax(evaluate, searcher.WithMetrics(metrics.NewCollector())),
		alphaBeta:  searcher.NewAlphaBeta(evaluate, searcher.WithMetrics(metrics.NewCollector())),
		tournament: searcher.AlphaBeta,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Search) Evaluate(state game.State) float64 {
	return a.evaluate(state)
}

func (a *Search) MinimaxMove(state game.State, _ game.Visited) (game.Move, error) {
	a.last = a.minimax
	return a.minimax.FindMove(state)
}

func (a *Search) AlphaBetaMove(state game.State, _ game.Visited) (game.Move, error) {
	a.last = a.alphaBeta
	return a.alphaBeta.FindMove(state)
}

func (a *Search) TournamentMove(state game.State, visited game.Visited) (game.Move, error) {
	if a.tournament == searcher.Minimax {
		return a.MinimaxMove(state, visited)
	}
	return a.AlphaBetaMove(state, visited)
}

// LastSearch reports the statistics of the most recent move search.
func (a *Search) LastSearch() metrics.SearchMetric {
	if a.last == nil {
		return metrics.SearchMetric{}
	}
	return a.last.LastSearch()
}

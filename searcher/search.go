package searcher

import (
	"math"

	"adversary/experiments/metrics"
	"adversary/game"
	"adversary/meta"

	"github.com/rs/zerolog/log"
)

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	if a == AlphaBeta {
		return "alpha-beta"
	}
	return "minimax"
}

type Option func(s *Searcher)

// Searcher runs depth-limited adversarial search over states that carry an
// expansion budget.
type Searcher struct {
	algorithm Algorithm
	evaluate  game.Evaluate
	horizon   HorizonPolicy
	metrics   metrics.Collector
	last      metrics.SearchMetric
}

func WithHorizon(policy HorizonPolicy) Option {
	return func(s *Searcher) {
		if policy != nil {
			s.horizon = policy
		}
	}
}

func WithBranchingFactor(b int) Option {
	return func(s *Searcher) {
		if b > 0 {
			s.horizon = BranchingHorizon(b)
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// NewMinimax returns a minimax searcher assuming a branching factor of
// meta.MinimaxBranching unless overridden.
func NewMinimax(evaluate game.Evaluate, options ...Option) *Searcher {
	return newSearcher(Minimax, meta.MinimaxBranching, evaluate, options)
}

// NewAlphaBeta returns an alpha-beta searcher assuming a branching factor of
// meta.AlphaBetaBranching unless overridden.
func NewAlphaBeta(evaluate game.Evaluate, options ...Option) *Searcher {
	return newSearcher(AlphaBeta, meta.AlphaBetaBranching, evaluate, options)
}

func newSearcher(algorithm Algorithm, branching int, evaluate game.Evaluate, options []Option) *Searcher {
	s := &Searcher{
		algorithm: algorithm,
		evaluate:  evaluate,
		horizon:   BranchingHorizon(branching),
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.evaluate == nil {
		s.evaluate = func(game.State) float64 { return DrawValue }
	}
	return s
}

func (s *Searcher) Algorithm() Algorithm {
	return s.algorithm
}

// LastSearch returns the statistics collected by the last FindMove. They are
// empty unless the searcher was built WithMetrics.
func (s *Searcher) LastSearch() metrics.SearchMetric {
	return s.last
}

// FindMove derives the horizon from the budget attached to state and searches.
func (s *Searcher) FindMove(state game.State) (game.Move, error) {
	h := s.horizon(game.Remaining(state))
	s.metrics.Start(s.algorithm.String(), h)

	move, value, err := s.Search(state, h)

	m := s.metrics.Complete()
	s.last = m
	log.Debug().Msgf("%s search: horizon=%d value=%g nodes=%d cutoffs=%d duration=%s",
		s.algorithm, h, value, m.Nodes, m.Cutoffs, m.Duration)

	if err != nil {
		return nil, err
	}
	if move == nil {
		return s.fallback(state)
	}
	return move, nil
}

// fallback picks the first legal move when the search did not look past the
// root, as happens when the position is already won. A terminal root or a
// spent budget leaves nothing to play.
func (s *Searcher) fallback(state game.State) (game.Move, error) {
	moves := state.SuccessorMoves().Moves
	if len(moves) == 0 {
		return nil, ErrNoMove
	}
	log.Debug().Msgf("%s search: root is decided, playing %s", s.algorithm, moves[0])
	return moves[0], nil
}

// Search returns the best move and its backed-up value at horizon h. The move is
// nil when the root itself is a leaf.
func (s *Searcher) Search(state game.State, h int) (game.Move, float64, error) {
	if s.algorithm == AlphaBeta {
		return s.alphaBeta(state, h, math.Inf(-1), math.Inf(1))
	}
	return s.minimax(state, h)
}

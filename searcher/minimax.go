package searcher

import "adversary/game"

func (s *Searcher) minimax(state game.State, h int) (game.Move, float64, error) {
	s.metrics.AddNode()

	if value, ok := terminal(state, h, s.evaluate); ok {
		return nil, value, nil
	}

	frontier, err := game.Expand(state)
	if err != nil {
		return nil, 0, err
	}
	if frontier.Exhausted {
		return nil, s.evaluate(state), nil
	}
	if frontier.Terminal() {
		return nil, DrawValue, nil
	}

	maximizing := state.NextPlayer() == state.Players()[0]
	var best game.Move
	var bestValue float64
	for i, successor := range frontier.Successors {
		_, value, err := s.minimax(successor.State, h-1)
		if err != nil {
			return nil, 0, err
		}
		// Strict comparison keeps the first of equal values.
		if i == 0 || (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			best, bestValue = successor.Move, value
		}
	}
	return best, bestValue, nil
}

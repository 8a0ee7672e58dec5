package searcher

import "adversary/game"

// alphaBeta is minimax with pruning. alpha and beta are the bounds inherited from
// the caller and are passed by value.
func (s *Searcher) alphaBeta(state game.State, h int, alpha, beta float64) (game.Move, float64, error) {
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
		_, value, err := s.alphaBeta(successor.State, h-1, alpha, beta)
		if err != nil {
			return nil, 0, err
		}
		if i == 0 || (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			best, bestValue = successor.Move, value
		}

		if maximizing {
			if bestValue >= beta {
				s.metrics.AddCutoff()
				return best, bestValue, nil
			}
			alpha = max(alpha, bestValue)
		} else {
			if bestValue <= alpha {
				s.metrics.AddCutoff()
				return best, bestValue, nil
			}
			beta = min(beta, bestValue)
		}
	}
	return best, bestValue, nil
}

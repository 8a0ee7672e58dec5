package searcher

import (
	"errors"
	"math"

	"adversary/game"
)

// Backed-up values are from the first player's point of view.
const (
	WinValue  = math.MaxFloat64
	LossValue = -math.MaxFloat64
	DrawValue = 0.0
)

var ErrNoMove = errors.New("search produced no move")

// HorizonPolicy derives a ply horizon from the budget left at the start of a
// search.
type HorizonPolicy func(remaining int) int

// BranchingHorizon assumes every position has b successors and returns the
// deepest horizon the budget could cover: floor(remaining^(1/b)).
func BranchingHorizon(b int) HorizonPolicy {
	return func(remaining int) int {
		if remaining <= 0 || b <= 0 {
			return 0
		}
		// Nudge exact powers past floating point error: 81^(1/4) must be 3.
		return int(math.Floor(math.Pow(float64(remaining), 1/float64(b)) + 1e-9))
	}
}

// FixedHorizon ignores the budget.
func FixedHorizon(h int) HorizonPolicy {
	return func(int) int {
		return h
	}
}

// terminal returns the value of a position the search must not expand.
func terminal(state game.State, h int, evaluate game.Evaluate) (float64, bool) {
	players := state.Players()
	if state.IsWin(players[0]) {
		return WinValue, true
	}
	if state.IsWin(players[1]) {
		return LossValue, true
	}
	if budget := state.Budget(); budget != nil && budget.Remaining() <= 0 {
		return evaluate(state), true
	}
	if h <= 0 {
		return evaluate(state), true
	}
	return 0, false
}

package game

// Expansion is the answer to a request for legal moves. It has three shapes:
// a non-empty move list, an empty list (terminal position), or Exhausted (the
// budget refused the request and the caller must stop searching here).
type Expansion struct {
	Moves     []Move
	Exhausted bool
}

var BudgetExhausted = Expansion{Exhausted: true}

// Terminal reports a position with no legal moves.
func (e Expansion) Terminal() bool {
	return !e.Exhausted && len(e.Moves) == 0
}

// Successor pairs a legal move with the position it leads to.
type Successor struct {
	Move  Move
	State State
}

// Frontier is the successor counterpart of Expansion.
type Frontier struct {
	Successors []Successor
	Exhausted  bool
}

func (f Frontier) Terminal() bool {
	return !f.Exhausted && len(f.Successors) == 0
}

// Expand generates the successors of state in move order. It spends one unit
// of the budget attached to state.
func Expand(state State) (Frontier, error) {
	expansion := state.SuccessorMoves()
	if expansion.Exhausted {
		return Frontier{Exhausted: true}, nil
	}

	successors := make([]Successor, 0, len(expansion.Moves))
	for _, move := range expansion.Moves {
		next, err := MoveCopy(state, move)
		if err != nil {
			return Frontier{}, err
		}
		successors = append(successors, Successor{Move: move, State: next})
	}
	return Frontier{Successors: successors}, nil
}

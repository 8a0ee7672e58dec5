package game

// Budget caps how many successor lists may be generated during one turn. A
// single Budget is shared by pointer between the controller and every state
// cloned from the one handed to an agent.
type Budget struct {
	count int
}

func NewBudget(count int) *Budget {
	return &Budget{count: count}
}

func (b *Budget) Remaining() int {
	return b.count
}

// Consume takes one unit and reports whether one was available.
func (b *Budget) Consume() bool {
	if b.count <= 0 {
		return false
	}
	b.count--
	return true
}

// Reset re-arms the budget. Only the controller raises it.
func (b *Budget) Reset(count int) {
	b.count = count
}

// Base carries the state of a position that is not part of the game rules.
// Rule implementations embed it.
type Base struct {
	budget *Budget
}

func (b *Base) SetBudget(budget *Budget) {
	b.budget = budget
}

func (b *Base) Budget() *Budget {
	return b.budget
}

// BeginExpansion must be called at the top of SuccessorMoves. It consumes one
// unit of the attached budget and returns false when the budget is spent.
// Without a budget generation is unconstrained.
func (b *Base) BeginExpansion() bool {
	if b.budget == nil {
		return true
	}
	return b.budget.Consume()
}

func (b *Base) Repeats() bool {
	return false
}

func (b *Base) RepeatedRep() Rep {
	return ""
}

func (b *Base) HandleCycle() {}

// Remaining reports the budget left to the holder of state, or -1 when no
// budget is attached.
func Remaining(state State) int {
	if state.Budget() == nil {
		return -1
	}
	return state.Budget().Remaining()
}

package game

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

// PlayerID identifies one side of a game. IDs are fixed for the lifetime of a game.
type PlayerID int

type Move interface {
	fmt.Stringer
	Player() PlayerID
	IsForfeit() bool
}

// Rep is a canonical representation of a position, used to detect repetitions.
type Rep string

// State is a mutable game position. Move mutates in place; search works on clones.
//
// Every State embeds a Base, which carries the expansion budget attached for the
// current turn. Clone must copy position data and alias the budget.
type State interface {
	fmt.Stringer

	// Players returns the ordered player IDs. The first maximizes, the second minimizes.
	Players() []PlayerID
	NextPlayer() PlayerID
	// PlayerState returns the view of the position handed to the given player.
	PlayerState(player PlayerID) State
	Clone() State
	Clear()

	IsWin(player PlayerID) bool
	IsValidMove(move Move) bool
	// Move applies the move destructively and returns the player to move next.
	// safeToClear reports that no earlier position can ever be reached again; it
	// is only set when clearRepeats is true.
	Move(move Move, clearRepeats bool) (next PlayerID, safeToClear bool, err error)
	SuccessorMoves() Expansion

	Repeats() bool
	RepeatedRep() Rep
	HandleCycle()

	SetBudget(budget *Budget)
	Budget() *Budget
}

// Evaluate scores a position from the first player's point of view: positive
// favours Players()[0], negative favours Players()[1].
type Evaluate func(State) float64

// Other returns the opponent of player in a two-player game.
func Other(state State, player PlayerID) PlayerID {
	players := state.Players()
	if players[0] == player {
		return players[1]
	}
	return players[0]
}

// MoveCopy applies move to a clone of state, leaving state untouched.
func MoveCopy(state State, move Move) (State, error) {
	if !state.IsValidMove(move) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}
	next := state.Clone()
	if _, _, err := next.Move(move, false); err != nil {
		return nil, err
	}
	return next, nil
}

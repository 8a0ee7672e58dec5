package searcher

import (
	"fmt"

	"adversary/game"
)

// node is a position in a hand-built game tree. Leaves carry the value the
// evaluation function reports for them.
type node struct {
	label    string
	value    float64
	winner   *game.PlayerID
	children []*node
}

func leaf(label string, value float64) *node {
	return &node{label: label, value: value}
}

func branch(label string, children ...*node) *node {
	return &node{label: label, children: children}
}

func won(label string, player game.PlayerID) *node {
	return &node{label: label, winner: &player}
}

type mockMove struct {
	player game.PlayerID
	id     int
}

func (m mockMove) Player() game.PlayerID { return m.player }
func (m mockMove) IsForfeit() bool       { return false }
func (m mockMove) String() string        { return fmt.Sprintf("%d:%d", m.player, m.id) }

type mockState struct {
	game.Base
	node   *node
	player game.PlayerID
}

func newMockState(root *node) *mockState {
	return &mockState{node: root}
}

func (s *mockState) String() string                       { return s.node.label }
func (s *mockState) Players() []game.PlayerID             { return []game.PlayerID{0, 1} }
func (s *mockState) NextPlayer() game.PlayerID            { return s.player }
func (s *mockState) PlayerState(game.PlayerID) game.State { return s.Clone() }
func (s *mockState) Clone() game.State                    { c := *s; return &c }
func (s *mockState) Clear()                               {}

func (s *mockState) IsWin(player game.PlayerID) bool {
	return s.node.winner != nil && *s.node.winner == player
}

func (s *mockState) IsValidMove(move game.Move) bool {
	m, ok := move.(mockMove)
	return ok && m.player == s.player && m.id >= 0 && m.id < len(s.node.children)
}

func (s *mockState) Move(move game.Move, _ bool) (game.PlayerID, bool, error) {
	if !s.IsValidMove(move) {
		return s.player, false, game.ErrIllegalMove
	}
	s.node = s.node.children[move.(mockMove).id]
	s.player = 1 - s.player
	return s.player, false, nil
}

func (s *mockState) SuccessorMoves() game.Expansion {
	if !s.BeginExpansion() {
		return game.BudgetExhausted
	}
	moves := []game.Move{}
	for i := range s.node.children {
		moves = append(moves, mockMove{player: s.player, id: i})
	}
	return game.Expansion{Moves: moves}
}

// recorder evaluates tree nodes by their stored value and remembers the order
// in which they were evaluated.
type recorder struct {
	evaluated []string
}

func (r *recorder) evaluate(state game.State) float64 {
	s := state.(*mockState)
	r.evaluated = append(r.evaluated, s.node.label)
	return s.node.value
}

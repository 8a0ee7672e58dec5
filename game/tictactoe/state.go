package tictactoe

import (
	"fmt"
	"strings"

	"adversary/game"
)

const (
	Empty game.PlayerID = -1
	X     game.PlayerID = 1
	O     game.PlayerID = 2
)

const Size = 9

// lines lists every row, column and diagonal of the board.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

type Move struct {
	player  game.PlayerID
	Square  int
	forfeit bool
}

func NewMove(player game.PlayerID, square int) Move {
	return Move{player: player, Square: square}
}

func Forfeit(player game.PlayerID) Move {
	return Move{player: player, Square: -1, forfeit: true}
}

func (m Move) Player() game.PlayerID { return m.player }
func (m Move) IsForfeit() bool       { return m.forfeit }

func (m Move) String() string {
	if m.forfeit {
		return fmt.Sprintf("Player %c forfeits", symbol(m.player))
	}
	return fmt.Sprintf("Player %c moves to square %d", symbol(m.player), m.Square+1)
}

type State struct {
	game.Base
	board  [Size]game.PlayerID
	player game.PlayerID
}

// New returns an empty board with X to move.
func New() *State {
	s := &State{}
	s.Clear()
	return s
}

// FromBoard builds a position from a board layout, for example "XO.|.X.|..O".
// Any character other than X or O is an empty square; '|' and spaces are ignored.
func FromBoard(layout string, next game.PlayerID) (*State, error) {
	s := New()
	s.player = next
	i := 0
	for _, c := range strings.NewReplacer("|", "", " ", "", "\n", "").Replace(layout) {
		if i >= Size {
			return nil, fmt.Errorf("board layout has more than %d squares", Size)
		}
		switch c {
		case 'X', 'x':
			s.board[i] = X
		case 'O', 'o':
			s.board[i] = O
		}
		i++
	}
	if i != Size {
		return nil, fmt.Errorf("board layout has %d squares, want %d", i, Size)
	}
	return s, nil
}

func (s *State) Clear() {
	for i := range s.board {
		s.board[i] = Empty
	}
	s.player = X
}

func (s *State) Players() []game.PlayerID {
	return []game.PlayerID{X, O}
}

func (s *State) NextPlayer() game.PlayerID {
	return s.player
}

// Square returns the owner of a square, or Empty.
func (s *State) Square(i int) game.PlayerID {
	return s.board[i]
}

func (s *State) Clone() game.State {
	c := *s
	return &c
}

// PlayerState returns a full copy: tic-tac-toe hides nothing.
func (s *State) PlayerState(game.PlayerID) game.State {
	return s.Clone()
}

func (s *State) IsWin(player game.PlayerID) bool {
	for _, line := range lines {
		if s.board[line[0]] == player && s.board[line[1]] == player && s.board[line[2]] == player {
			return true
		}
	}
	return false
}

func (s *State) IsValidMove(move game.Move) bool {
	m, ok := move.(Move)
	if !ok || m.forfeit {
		return false
	}
	return m.player == s.player && m.Square >= 0 && m.Square < Size && s.board[m.Square] == Empty
}

func (s *State) Move(move game.Move, _ bool) (game.PlayerID, bool, error) {
	if !s.IsValidMove(move) {
		return Empty, false, fmt.Errorf("%w: %s", game.ErrIllegalMove, move)
	}
	m := move.(Move)
	s.board[m.Square] = s.player
	s.player = game.Other(s, s.player)
	return s.player, false, nil
}

// SuccessorMoves lists the empty squares in ascending order.
func (s *State) SuccessorMoves() game.Expansion {
	if !s.BeginExpansion() {
		return game.BudgetExhausted
	}
	moves := []game.Move{}
	for i, v := range s.board {
		if v == Empty {
			moves = append(moves, NewMove(s.player, i))
		}
	}
	return game.Expansion{Moves: moves}
}

func (s *State) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("-----\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteRune(symbol(s.board[row*3+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func symbol(p game.PlayerID) rune {
	switch p {
	case X:
		return 'X'
	case O:
		return 'O'
	}
	return ' '
}

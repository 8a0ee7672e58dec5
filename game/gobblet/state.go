package gobblet

import (
	"fmt"
	"strconv"
	"strings"

	"adversary/game"
)

const (
	Blue   game.PlayerID = 0
	Orange game.PlayerID = 1
)

const (
	Small = iota
	Medium
	Large
	NumSizes
)

// PiecesPerSize is how many pieces of each size a player starts with.
const PiecesPerSize = 2

var (
	playerNames = [2]string{"B", "O"}
	sizeNames   = [NumSizes]string{"S", "M", "L"}
)

type Pos struct {
	Row, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

var lines = [8][3]Pos{
	{{0, 0}, {1, 1}, {2, 2}}, {{2, 0}, {1, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {2, 0}}, {{0, 1}, {1, 1}, {2, 1}}, {{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}}, {{1, 0}, {1, 1}, {1, 2}}, {{2, 0}, {2, 1}, {2, 2}},
}

type Piece struct {
	Player game.PlayerID
	Size   int
}

func (p Piece) String() string {
	return playerNames[p.Player] + sizeNames[p.Size]
}

// stack holds the pieces on one square, smallest at the bottom. Sizes strictly
// increase upwards, so a square never holds more than NumSizes pieces.
type stack struct {
	pieces [NumSizes]Piece
	n      int
}

func (s *stack) top() (Piece, bool) {
	if s.n == 0 {
		return Piece{}, false
	}
	return s.pieces[s.n-1], true
}

func (s *stack) push(p Piece) {
	s.pieces[s.n] = p
	s.n++
}

func (s *stack) pop() {
	s.n--
}

// Move either places a piece from the reserve (FromReserve) or moves the top
// piece of Source.
type Move struct {
	player      game.PlayerID
	Size        int
	FromReserve bool
	Source      Pos
	Target      Pos
	forfeit     bool
}

func Place(player game.PlayerID, size int, target Pos) Move {
	return Move{player: player, Size: size, FromReserve: true, Target: target}
}

func Shift(player game.PlayerID, size int, source, target Pos) Move {
	return Move{player: player, Size: size, Source: source, Target: target}
}

func Forfeit(player game.PlayerID) Move {
	return Move{player: player, forfeit: true}
}

func (m Move) Player() game.PlayerID { return m.player }
func (m Move) IsForfeit() bool       { return m.forfeit }

func (m Move) String() string {
	if m.forfeit {
		return fmt.Sprintf("Player %s forfeits", playerNames[m.player])
	}
	if m.FromReserve {
		return fmt.Sprintf("Player %s moves %s to %s", playerNames[m.player], sizeNames[m.Size], m.Target)
	}
	return fmt.Sprintf("Player %s moves %s from %s to %s", playerNames[m.player], sizeNames[m.Size], m.Source, m.Target)
}

type State struct {
	game.Base
	board  [3][3]stack
	pieces [2][NumSizes]int
	player game.PlayerID
	isDraw bool
}

func New() *State {
	s := &State{}
	s.Clear()
	return s
}

func (s *State) Clear() {
	s.board = [3][3]stack{}
	for p := range s.pieces {
		for size := range s.pieces[p] {
			s.pieces[p][size] = PiecesPerSize
		}
	}
	s.player = Blue
	s.isDraw = false
}

func (s *State) Players() []game.PlayerID {
	return []game.PlayerID{Blue, Orange}
}

func (s *State) NextPlayer() game.PlayerID {
	return s.player
}

// Top returns the visible piece on a square.
func (s *State) Top(pos Pos) (Piece, bool) {
	return s.board[pos.Row][pos.Col].top()
}

// Available returns how many pieces of a size the player still holds in reserve.
func (s *State) Available(player game.PlayerID, size int) int {
	return s.pieces[player][size]
}

// IsDraw reports that a repetition ended the game.
func (s *State) IsDraw() bool {
	return s.isDraw
}

func (s *State) Clone() game.State {
	c := *s
	return &c
}

func (s *State) PlayerState(game.PlayerID) game.State {
	return s.Clone()
}

func (s *State) IsWin(player game.PlayerID) bool {
	for _, line := range lines {
		win := true
		for _, pos := range line {
			top, ok := s.Top(pos)
			if !ok || top.Player != player {
				win = false
				break
			}
		}
		if win {
			return true
		}
	}
	return false
}

func (s *State) IsValidMove(move game.Move) bool {
	m, ok := move.(Move)
	if !ok || m.forfeit || m.player != s.player {
		return false
	}
	if m.Size < 0 || m.Size >= NumSizes || !onBoard(m.Target) {
		return false
	}
	if m.FromReserve {
		if s.pieces[s.player][m.Size] <= 0 {
			return false
		}
	} else {
		if !onBoard(m.Source) || m.Source == m.Target {
			return false
		}
		top, ok := s.Top(m.Source)
		if !ok || top.Player != s.player || top.Size != m.Size {
			return false
		}
	}
	if top, ok := s.Top(m.Target); ok && top.Size >= m.Size {
		return false
	}
	return true
}

// Move reports safeToClear for placements: the reserve never grows back, so no
// earlier position can recur.
func (s *State) Move(move game.Move, clearRepeats bool) (game.PlayerID, bool, error) {
	if !s.IsValidMove(move) {
		return s.player, false, fmt.Errorf("%w: %s", game.ErrIllegalMove, move)
	}
	m := move.(Move)
	if m.FromReserve {
		s.pieces[s.player][m.Size]--
	} else {
		s.board[m.Source.Row][m.Source.Col].pop()
	}
	s.board[m.Target.Row][m.Target.Col].push(Piece{Player: s.player, Size: m.Size})
	s.player = game.Other(s, s.player)
	return s.player, clearRepeats && m.FromReserve, nil
}

// SuccessorMoves lists placements by size then target, followed by moves of
// board pieces by source then target, all in row-major order.
func (s *State) SuccessorMoves() game.Expansion {
	if s.isDraw {
		return game.Expansion{}
	}
	if !s.BeginExpansion() {
		return game.BudgetExhausted
	}

	moves := []game.Move{}
	for size := 0; size < NumSizes; size++ {
		for _, target := range squares() {
			if m := Place(s.player, size, target); s.IsValidMove(m) {
				moves = append(moves, m)
			}
		}
	}
	for _, source := range squares() {
		top, ok := s.Top(source)
		if !ok || top.Player != s.player {
			continue
		}
		for _, target := range squares() {
			if m := Shift(s.player, top.Size, source, target); s.IsValidMove(m) {
				moves = append(moves, m)
			}
		}
	}
	return game.Expansion{Moves: moves}
}

func (s *State) Repeats() bool {
	return true
}

// RepeatedRep encodes every stack and the player to move. Reserves follow from
// the board and are left out.
func (s *State) RepeatedRep() game.Rep {
	var sb strings.Builder
	for _, pos := range squares() {
		st := &s.board[pos.Row][pos.Col]
		for i := 0; i < st.n; i++ {
			sb.WriteString(st.pieces[i].String())
		}
		sb.WriteByte('/')
	}
	sb.WriteString(strconv.Itoa(int(s.player)))
	return game.Rep(sb.String())
}

// HandleCycle declares the game drawn.
func (s *State) HandleCycle() {
	s.isDraw = true
}

func (s *State) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("------------\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString(" | ")
			}
			if top, ok := s.Top(Pos{row, col}); ok {
				sb.WriteString(top.String())
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func onBoard(p Pos) bool {
	return p.Row >= 0 && p.Row < 3 && p.Col >= 0 && p.Col < 3
}

func squares() []Pos {
	out := make([]Pos, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out = append(out, Pos{row, col})
		}
	}
	return out
}

package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"adversary/game"
)

// Evaluate scores a position as the number of lines still open to X minus the
// number still open to O.
func Evaluate(state game.State) float64 {
	s, ok := state.(*State)
	if !ok {
		return 0
	}
	return float64(s.openLines(O) - s.openLines(X))
}

// openLines counts the lines that contain no piece of the blocker.
func (s *State) openLines(blocker game.PlayerID) int {
	open := 0
	for _, line := range lines {
		if s.board[line[0]] != blocker && s.board[line[1]] != blocker && s.board[line[2]] != blocker {
			open++
		}
	}
	return open
}

// ParseMove reads a square numbered 1-9, or "q" to forfeit.
func ParseMove(state game.State, input string) (game.Move, error) {
	input = strings.TrimSpace(input)
	player := state.NextPlayer()
	if input == "q" {
		return Forfeit(player), nil
	}
	square, err := strconv.Atoi(input)
	if err != nil || square < 1 || square > Size {
		return nil, fmt.Errorf("please input an integer 1-9, or q to quit")
	}
	move := NewMove(player, square-1)
	if !state.IsValidMove(move) {
		return nil, fmt.Errorf("square %d is not available", square)
	}
	return move, nil
}

// Prompt is shown to a human player before each move.
const Prompt = "What square would you like to move to (1-9, q to quit)? "

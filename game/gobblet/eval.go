package gobblet

import (
	"fmt"
	"strconv"
	"strings"

	"adversary/game"
)

// Evaluate rewards lines whose visible pieces all belong to one player, weighted
// by how many of the line's squares that player already covers.
func Evaluate(state game.State) float64 {
	s, ok := state.(*State)
	if !ok {
		return 0
	}
	score := 0.0
	for _, line := range lines {
		owned := [2]int{}
		for _, pos := range line {
			if top, ok := s.Top(pos); ok {
				owned[top.Player]++
			}
		}
		switch {
		case owned[Orange] == 0:
			score += float64(owned[Blue] * owned[Blue])
		case owned[Blue] == 0:
			score -= float64(owned[Orange] * owned[Orange])
		}
	}
	return score
}

// Prompt is shown to a human player before each move.
const Prompt = "Move as 'SOURCE TARGET [SIZE]': squares 1-9, SOURCE 0 places a new piece of SIZE 0-2, q to quit: "

// ParseMove reads "SOURCE TARGET [SIZE]". Squares are numbered 1-9 row by row.
// A source of 0 places a piece of the given size from the reserve; "q" forfeits.
func ParseMove(state game.State, input string) (game.Move, error) {
	s, ok := state.(*State)
	if !ok {
		return nil, fmt.Errorf("not a gobblet state: %T", state)
	}
	fields := strings.Fields(input)
	if len(fields) == 1 && fields[0] == "q" {
		return Forfeit(s.player), nil
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("please input a source and a target square, or q to quit")
	}

	source, err := parseSquare(fields[0], 0)
	if err != nil {
		return nil, err
	}
	target, err := parseSquare(fields[1], 1)
	if err != nil {
		return nil, err
	}
	targetPos := Pos{(target - 1) / 3, (target - 1) % 3}

	var move Move
	if source == 0 {
		if len(fields) < 3 {
			return nil, fmt.Errorf("please give the size (0-2) of the piece to place")
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil || size < 0 || size >= NumSizes {
			return nil, fmt.Errorf("please input a size 0-2")
		}
		if s.Available(s.player, size) <= 0 {
			return nil, fmt.Errorf("you do not have any pieces of that size available")
		}
		move = Place(s.player, size, targetPos)
	} else {
		sourcePos := Pos{(source - 1) / 3, (source - 1) % 3}
		top, ok := s.Top(sourcePos)
		if !ok || top.Player != s.player {
			return nil, fmt.Errorf("you do not have a topmost piece at that location")
		}
		move = Shift(s.player, top.Size, sourcePos, targetPos)
	}

	if !s.IsValidMove(move) {
		return nil, fmt.Errorf("that move is not legal")
	}
	return move, nil
}

func parseSquare(field string, lowest int) (int, error) {
	sq, err := strconv.Atoi(field)
	if err != nil || sq < lowest || sq > 9 {
		return 0, fmt.Errorf("please input a square %d-9", lowest)
	}
	return sq, nil
}

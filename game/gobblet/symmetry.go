package gobblet

// Mirror returns a copy of s reflected left to right.
func (s *State) Mirror() *State {
	r := *s
	for row := 0; row < 3; row++ {
		r.board[row][0], r.board[row][2] = s.board[row][2], s.board[row][0]
	}
	return &r
}

// Rotate returns a copy of s turned a quarter clockwise.
func (s *State) Rotate() *State {
	r := *s
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r.board[col][2-row] = s.board[row][col]
		}
	}
	return &r
}

// Rotations returns the three non-trivial rotations of s, a quarter turn apart.
func (s *State) Rotations() []*State {
	rots := []*State{s.Rotate()}
	for i := 0; i < 2; i++ {
		rots = append(rots, rots[len(rots)-1].Rotate())
	}
	return rots
}

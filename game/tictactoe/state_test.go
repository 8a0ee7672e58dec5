package tictactoe

import (
	"testing"

	"adversary/game"

	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	t.Run("applying a move switches player", func(t *testing.T) {
		s := New()

		next, safe, err := s.Move(NewMove(X, 4), true)

		require.NoError(t, err)
		require.Equal(t, O, next)
		require.False(t, safe, "Tic-tac-toe never clears repetition history")
		require.Equal(t, X, s.Square(4))
	})

	t.Run("illegal moves are rejected", func(t *testing.T) {
		s := New()
		_, _, err := s.Move(NewMove(X, 4), false)
		require.NoError(t, err)

		require.False(t, s.IsValidMove(NewMove(O, 4)), "Occupied square")
		require.False(t, s.IsValidMove(NewMove(X, 0)), "Wrong player")
		require.False(t, s.IsValidMove(NewMove(O, 9)), "Off the board")
		require.False(t, s.IsValidMove(Forfeit(O)), "Forfeit is not a board move")

		_, _, err = s.Move(NewMove(O, 4), false)
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("clone then move never mutates the original", func(t *testing.T) {
		s := New()
		for _, m := range s.SuccessorMoves().Moves {
			before := s.String()

			c := s.Clone()
			_, _, err := c.Move(m, false)

			require.NoError(t, err)
			require.Equal(t, before, s.String(), "Original board changed after %s", m)
			require.Equal(t, X, s.NextPlayer())
		}
	})
}

func TestIsWin(t *testing.T) {
	testCases := []struct {
		name   string
		layout string
		x, o   bool
	}{
		{"empty", "...|...|...", false, false},
		{"row", "XXX|OO.|...", true, false},
		{"column", "XO.|XO.|.O.", false, true},
		{"diagonal", "X.O|.XO|..X", true, false},
		{"anti diagonal", "XXO|.O.|O.X", false, true},
		{"full board draw", "XOX|XOO|OXX", false, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := FromBoard(tc.layout, X)
			require.NoError(t, err)

			require.Equal(t, tc.x, s.IsWin(X))
			require.Equal(t, tc.o, s.IsWin(O))
		})
	}
}

func TestSuccessorMoves(t *testing.T) {
	t.Run("empty squares in ascending order", func(t *testing.T) {
		s, err := FromBoard("X..|.O.|...", X)
		require.NoError(t, err)

		moves := s.SuccessorMoves().Moves

		squares := []int{}
		for _, m := range moves {
			squares = append(squares, m.(Move).Square)
		}
		require.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, squares)
	})

	t.Run("full board has no moves", func(t *testing.T) {
		s, err := FromBoard("XOX|XOO|OXX", X)
		require.NoError(t, err)
		s.SetBudget(game.NewBudget(1))

		require.True(t, s.SuccessorMoves().Terminal())
	})

	t.Run("spent budget", func(t *testing.T) {
		s := New()
		s.SetBudget(game.NewBudget(1))

		require.False(t, s.SuccessorMoves().Exhausted)
		require.True(t, s.SuccessorMoves().Exhausted)
	})

	t.Run("never repeats", func(t *testing.T) {
		require.False(t, New().Repeats())
	})
}

func TestEvaluate(t *testing.T) {
	require.Equal(t, 0.0, Evaluate(New()))

	s, err := FromBoard("...|.X.|...", O)
	require.NoError(t, err)
	// X in the centre blocks four of O's eight lines.
	require.Equal(t, 4.0, Evaluate(s))
}

func TestParseMove(t *testing.T) {
	s := New()

	move, err := ParseMove(s, "5\n")
	require.NoError(t, err)
	require.Equal(t, NewMove(X, 4), move)

	move, err = ParseMove(s, "q")
	require.NoError(t, err)
	require.True(t, move.IsForfeit())

	_, err = ParseMove(s, "10")
	require.Error(t, err)
	_, err = ParseMove(s, "abc")
	require.Error(t, err)
}

func TestFromBoard(t *testing.T) {
	_, err := FromBoard("XO", X)
	require.Error(t, err)

	s, err := FromBoard("X.O|...|..O", O)
	require.NoError(t, err)
	require.Equal(t, X, s.Square(0))
	require.Equal(t, Empty, s.Square(1))
	require.Equal(t, O, s.Square(2))
	require.Equal(t, O, s.Square(8))
	require.Equal(t, O, s.NextPlayer())
}

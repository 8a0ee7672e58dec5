package agent

import (
	"testing"

	"adversary/game"
	"adversary/game/tictactoe"
	"adversary/searcher"

	"github.com/stretchr/testify/require"
)

func withBudget(t *testing.T, layout string, next game.PlayerID, count int) *tictactoe.State {
	t.Helper()
	s, err := tictactoe.FromBoard(layout, next)
	require.NoError(t, err)
	s.SetBudget(game.NewBudget(count))
	return s
}

func TestSearch(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		a := NewSearch("adv", tictactoe.O, tictactoe.Evaluate)

		require.Equal(t, "adv", a.Name())
		require.Equal(t, tictactoe.O, a.GameID())
	})

	t.Run("every strategy takes an immediate win", func(t *testing.T) {
		a := NewSearch("adv", tictactoe.X, tictactoe.Evaluate)
		strategies := map[string]func(game.State, game.Visited) (game.Move, error){
			"minimax":    a.MinimaxMove,
			"alpha-beta": a.AlphaBetaMove,
			"tournament": a.TournamentMove,
		}
		for name, strategy := range strategies {
			state := withBudget(t, "XX.|OO.|...", tictactoe.X, 15)

			move, err := strategy(state, game.NewVisited())

			require.NoError(t, err, name)
			require.Equal(t, tictactoe.NewMove(tictactoe.X, 2), move, "%s should complete the top row", name)
		}
	})

	t.Run("minimizing player blocks", func(t *testing.T) {
		a := NewSearch("adv", tictactoe.O, tictactoe.Evaluate)
		state := withBudget(t, "XX.|.O.|...", tictactoe.O, 100)

		move, err := a.AlphaBetaMove(state, game.NewVisited())

		require.NoError(t, err)
		require.Equal(t, tictactoe.NewMove(tictactoe.O, 2), move)
	})

	t.Run("horizon options", func(t *testing.T) {
		a := NewSearch("adv", tictactoe.X, tictactoe.Evaluate,
			WithMinimaxHorizon(searcher.FixedHorizon(2)),
			WithTournamentAlgorithm(searcher.Minimax),
		)
		state := withBudget(t, "...|...|...", tictactoe.X, 1000)

		_, err := a.TournamentMove(state, game.NewVisited())

		require.NoError(t, err)
		require.Equal(t, 1000-1-9, state.Budget().Remaining(), "Horizon 2 should expand the root and its nine children")

		search := a.LastSearch()
		require.Equal(t, "minimax", search.Algorithm)
		require.Equal(t, 2, search.Horizon)
		require.Equal(t, 1+9+9*8, search.Nodes, "Root, replies and counter-replies should all be visited")
	})

	t.Run("reports the search behind the last move", func(t *testing.T) {
		a := NewSearch("adv", tictactoe.X, tictactoe.Evaluate)
		require.Equal(t, "", a.LastSearch().Algorithm, "Nothing is reported before the first search")

		_, err := a.AlphaBetaMove(withBudget(t, "...|...|...", tictactoe.X, 15), game.NewVisited())
		require.NoError(t, err)
		require.Equal(t, "alpha-beta", a.LastSearch().Algorithm)
		require.Equal(t, 1, a.LastSearch().Horizon)
		require.Equal(t, 10, a.LastSearch().Nodes)

		_, err = a.MinimaxMove(withBudget(t, "...|...|...", tictactoe.X, 15), game.NewVisited())
		require.NoError(t, err)
		require.Equal(t, "minimax", a.LastSearch().Algorithm)
	})

	t.Run("spent budget yields no move", func(t *testing.T) {
		a := NewSearch("adv", tictactoe.X, tictactoe.Evaluate)
		state := withBudget(t, "...|...|...", tictactoe.X, 0)

		_, err := a.MinimaxMove(state, game.NewVisited())

		require.ErrorIs(t, err, searcher.ErrNoMove)
	})
}

func TestFirst(t *testing.T) {
	a := NewFirst("simple", tictactoe.X)
	state := withBudget(t, "O..|...|...", tictactoe.X, 1)

	move, err := a.TournamentMove(state, game.NewVisited())

	require.NoError(t, err)
	require.Equal(t, tictactoe.NewMove(tictactoe.X, 1), move)
	require.Equal(t, 0.0, a.Evaluate(state))

	full := withBudget(t, "XOX|XOO|OXX", tictactoe.X, 1)
	_, err = a.MinimaxMove(full, game.NewVisited())
	require.ErrorIs(t, err, searcher.ErrNoMove)
}

func TestRandom(t *testing.T) {
	play := func(seed uint64) []game.Move {
		a := NewRandom("random", tictactoe.X, seed)
		moves := []game.Move{}
		for i := 0; i < 5; i++ {
			move, err := a.MinimaxMove(tictactoe.New(), game.NewVisited())
			require.NoError(t, err)
			moves = append(moves, move)
		}
		return moves
	}

	first := play(7)
	require.Equal(t, first, play(7), "Same seed should replay the same moves")
	for _, m := range first {
		require.True(t, tictactoe.New().IsValidMove(m))
	}
}

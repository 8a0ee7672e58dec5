package experiments

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adversary/engine"
	"adversary/experiments/metrics"
	"adversary/game"
	"adversary/game/tictactoe"
	"adversary/gamemaster"
	"adversary/searcher/agent"

	"github.com/stretchr/testify/require"
)

// quitter forfeits every turn.
type quitter struct {
	agent.Identity
}

func (q quitter) Evaluate(game.State) float64 { return 0 }

func (q quitter) MinimaxMove(game.State, game.Visited) (game.Move, error) {
	return tictactoe.Forfeit(q.GameID()), nil
}

func (q quitter) AlphaBetaMove(s game.State, v game.Visited) (game.Move, error) {
	return q.MinimaxMove(s, v)
}

func (q quitter) TournamentMove(s game.State, v game.Visited) (game.Move, error) {
	return q.MinimaxMove(s, v)
}

func newRegistry(t *testing.T) *gamemaster.Registry {
	r := gamemaster.Builtin(strings.NewReader(""), io.Discard)
	require.NoError(t, r.RegisterAgent("tictactoe", "quitter", func(name string, id game.PlayerID) agent.Agent {
		return quitter{agent.NewIdentity(name, id)}
	}))
	return r
}

func TestPlayMatch(t *testing.T) {
	t.Run("repeated games start over", func(t *testing.T) {
		records := metrics.NewRecords()
		outcomes, err := PlayMatch(newRegistry(t), Match{
			Game:          "tictactoe",
			Agents:        [2]string{"simple", "simple"},
			Strategies:    [2]engine.Strategy{engine.Minimax, engine.Minimax},
			Games:         2,
			MaxExpansions: 15,
			Recorder:      records,
		})
		require.NoError(t, err)
		require.Len(t, outcomes, 2)
		for i, outcome := range outcomes {
			// X takes squares 0, 2, 4 and completes the 2-4-6 diagonal on ply 7.
			require.False(t, outcome.Draw, "game %d", i)
			require.Equal(t, tictactoe.X, outcome.Winner, "game %d", i)
			require.Equal(t, 7, outcome.Plies, "game %d", i)
			require.Len(t, records.Moves[outcome.ID], 7, "game %d", i)
		}
		require.NotEqual(t, outcomes[0].ID, outcomes[1].ID)
	})

	t.Run("search statistics reach the records", func(t *testing.T) {
		records := metrics.NewRecords()
		outcomes, err := PlayMatch(newRegistry(t), Match{
			Game:          "tictactoe",
			Agents:        [2]string{"adv", "simple"},
			Strategies:    [2]engine.Strategy{engine.AlphaBeta, engine.Minimax},
			Games:         1,
			MaxExpansions: 15,
			Recorder:      records,
		})
		require.NoError(t, err)

		moves := records.Moves[outcomes[0].ID]
		require.NotEmpty(t, moves)
		for _, m := range moves {
			if m.Agent == "adv" {
				require.Equal(t, "alpha-beta", m.Algorithm, "step %d", m.Step)
				require.Equal(t, 1, m.Horizon, "step %d", m.Step)
				require.Positive(t, m.Nodes, "step %d", m.Step)
			} else {
				require.Empty(t, m.Algorithm, "step %d", m.Step)
				require.Zero(t, m.Nodes, "step %d", m.Step)
			}
		}
	})

	t.Run("unknown names", func(t *testing.T) {
		_, err := PlayMatch(newRegistry(t), Match{Game: "chess", Games: 1, MaxExpansions: 15})
		require.True(t, errors.Is(err, gamemaster.ErrUnknownGame), "got %v", err)

		_, err = PlayMatch(newRegistry(t), Match{Game: "gobblet", Agents: [2]string{"adv", "quitter"}, Games: 1, MaxExpansions: 15})
		require.True(t, errors.Is(err, gamemaster.ErrUnknownAgent), "got %v", err)
	})
}

func TestRunTournament(t *testing.T) {
	records := metrics.NewRecords()
	result, err := RunTournament(newRegistry(t), Tournament{
		Game:          "tictactoe",
		Exclusions:    []string{"human", "random"},
		MaxExpansions: 15,
		Recorder:      records,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"adv", "quitter", "simple"}, result.Agents)
	require.Len(t, result.Outcomes, 6, "every ordered pair plays once")
	require.Len(t, records.Games, 6)

	t.Run("standings", func(t *testing.T) {
		require.Len(t, result.Standings, 3)
		require.Equal(t, metrics.Standing{Agent: "quitter", Losses: 4}, result.Standings[2])
		require.GreaterOrEqual(t, result.Standings[0].Score, result.Standings[1].Score)

		wins, losses, draws, score := 0, 0, 0, 0
		for _, s := range result.Standings {
			require.Equal(t, 4, s.Wins+s.Losses+s.Draws, "games played by %s", s.Agent)
			wins += s.Wins
			losses += s.Losses
			draws += s.Draws
			score += s.Score
		}
		require.Equal(t, wins, losses)
		require.Equal(t, wins, score)
		require.Equal(t, 12, wins+losses+draws)
	})

	t.Run("report", func(t *testing.T) {
		setup := metrics.Setup{Game: "tictactoe", Agents: result.Agents, Strategy: engine.Tournament.String(), MaxExpansions: 15}
		dir, err := WriteReport(t.TempDir(), setup, result.Standings, records)
		require.NoError(t, err)
		for _, name := range []string{"setup.yaml", "standings.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(dir, name))
			require.NoError(t, err, "missing %s", name)
		}
	})

	t.Run("too few agents", func(t *testing.T) {
		_, err := RunTournament(newRegistry(t), Tournament{
			Game:          "gobblet",
			Exclusions:    []string{"adv", "human", "random"},
			MaxExpansions: 15,
		})
		require.True(t, errors.Is(err, ErrTooFewAgents), "got %v", err)
	})
}

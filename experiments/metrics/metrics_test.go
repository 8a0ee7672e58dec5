package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("alpha-beta", 2)
	for i := 0; i < 5; i++ {
		c.AddNode()
	}
	c.AddCutoff()
	m := c.Complete()
	require.Equal(t, "alpha-beta", m.Algorithm)
	require.Equal(t, 2, m.Horizon)
	require.Equal(t, 5, m.Nodes)
	require.Equal(t, 1, m.Cutoffs)

	c.Start("minimax", 1)
	require.Zero(t, c.Complete().Nodes, "Start should reset counters")

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}

func TestRecords(t *testing.T) {
	records := NewRecords()
	prom := NewPrometheus()
	r := Tee(records, prom, NewDummyRecorder())

	r.RecordMove(MoveMetric{Step: 1, Agent: "a", Expansions: 3})
	r.RecordMove(MoveMetric{Step: 2, Agent: "b", Expansions: 15,
		SearchMetric: SearchMetric{Algorithm: "alpha-beta", Horizon: 1, Nodes: 10}})
	r.RecordGame(GameMetric{ID: "g1", Game: "tictactoe", Winner: "b"})
	r.RecordMove(MoveMetric{Step: 1, Agent: "b", Reason: "forfeit"})
	r.RecordGame(GameMetric{ID: "g2", Game: "tictactoe", Winner: "a"})
	r.RecordGame(GameMetric{ID: "g3", Game: "gobblet", Draw: true})

	t.Run("moves are grouped by game", func(t *testing.T) {
		require.Len(t, records.Games, 3)
		require.Len(t, records.Moves["g1"], 2)
		require.Len(t, records.Moves["g2"], 1)
		require.Empty(t, records.Moves["g3"])
	})

	t.Run("prometheus counters", func(t *testing.T) {
		require.Equal(t, 2.0, testutil.ToFloat64(prom.GamesTotal.WithLabelValues("tictactoe", "win")))
		require.Equal(t, 1.0, testutil.ToFloat64(prom.GamesTotal.WithLabelValues("gobblet", "draw")))
		require.Equal(t, 3.0, testutil.ToFloat64(prom.PliesTotal))
		require.Equal(t, 1.0, testutil.ToFloat64(prom.AgentFaultsTotal.WithLabelValues("forfeit")))
	})

	t.Run("textfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "adversary.prom")
		require.NoError(t, prom.WriteTextfile(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `adversary_games_total{game="tictactoe",result="win"} 2`)
		require.Contains(t, string(data), "adversary_move_expansions_count 3")
		require.Contains(t, string(data), `adversary_search_nodes_sum{algorithm="alpha-beta"} 10`)
	})
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(w.Dir(), dir))

	games := []GameMetric{
		{ID: "g1", Game: "tictactoe", StartingPlayer: 1, Winner: "adv", TotalMoves: 5},
		{ID: "g2", Game: "tictactoe", StartingPlayer: 1, Draw: true, TotalMoves: 9},
	}
	moves := map[string][]MoveMetric{
		"g1": {{Step: 1, Player: 1, Agent: "adv", Move: "Player X moves to square 5",
			SearchMetric: SearchMetric{Algorithm: "minimax", Horizon: 1, Nodes: 10, Cutoffs: 0}}},
		"g2": {{Step: 1, Player: 1, Agent: "simple"}, {Step: 2, Player: 2, Agent: "adv"}},
	}

	require.NoError(t, w.WriteGameRecords(games))
	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, []string{"g2", "tictactoe", "1", "", "true", "", "9"}, rows[2][:7])

	require.NoError(t, w.WriteMoveRecords(games, moves))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 4)
	require.Equal(t, "Player X moves to square 5", rows[1][5])
	require.Equal(t, []string{"minimax", "1", "10", "0"}, rows[1][9:], "search statistics")
	require.Equal(t, []string{"", "0", "0", "0"}, rows[2][9:], "agents that do not search")
	require.Equal(t, []string{"g2", "2", "2", "adv"}, rows[3][:4])

	require.NoError(t, w.WriteStandings([]Standing{{Agent: "adv", Score: 3, Wins: 3}, {Agent: "simple", Losses: 3}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "standings.csv"))
	require.Equal(t, []string{"1", "adv", "3", "3", "0", "0"}, rows[1])
	require.Equal(t, []string{"2", "simple", "0", "0", "3", "0"}, rows[2])

	setup := Setup{Game: "gobblet", Agents: []string{"adv", "simple"}, Strategy: "tournament", MaxExpansions: 15}
	require.NoError(t, w.WriteSetup(setup))
	data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.yaml"))
	require.NoError(t, err)
	var decoded Setup
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, setup, decoded)
}

package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Standing is one agent's line in a tournament table.
type Standing struct {
	Agent  string `yaml:"agent"`
	Score  int    `yaml:"score"`
	Wins   int    `yaml:"wins"`
	Losses int    `yaml:"losses"`
	Draws  int    `yaml:"draws"`
}

// Setup describes how a tournament was run.
type Setup struct {
	Game          string   `yaml:"game"`
	Agents        []string `yaml:"agents"`
	Excluded      []string `yaml:"excluded,omitempty"`
	Strategy      string   `yaml:"strategy"`
	MaxExpansions int      `yaml:"max_expansions"`
	MaxPlies      int      `yaml:"max_plies,omitempty"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	data, err := yaml.Marshal(setup)
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.yaml"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	header := []string{"id", "game", "starting_player", "winner", "draw", "reason", "moves", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", "game records", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			record.ID,
			record.Game,
			strconv.Itoa(int(record.StartingPlayer)),
			record.Winner,
			strconv.FormatBool(record.Draw),
			record.Reason,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	})
}

// WriteMoveRecords writes the moves of each game in games, in game order.
func (w *Writer) WriteMoveRecords(games []GameMetric, moves map[string][]MoveMetric) error {
	type row struct {
		game string
		MoveMetric
	}
	var rows []row
	for _, g := range games {
		for _, m := range moves[g.ID] {
			rows = append(rows, row{game: g.ID, MoveMetric: m})
		}
	}

	header := []string{"game", "step", "player", "agent", "strategy", "move", "expansions", "reason", "duration", "algorithm", "horizon", "nodes", "cutoffs"}
	return w.writeCSV("move_records.csv", "move records", header, len(rows), func(i int) []string {
		record := rows[i]
		return []string{
			record.game,
			strconv.Itoa(record.Step),
			strconv.Itoa(int(record.Player)),
			record.Agent,
			record.Strategy,
			record.Move,
			strconv.Itoa(record.Expansions),
			record.Reason,
			record.Duration.String(),
			record.Algorithm,
			strconv.Itoa(record.Horizon),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
		}
	})
}

func (w *Writer) WriteStandings(standings []Standing) error {
	header := []string{"rank", "agent", "score", "wins", "losses", "draws"}
	return w.writeCSV("standings.csv", "standings", header, len(standings), func(i int) []string {
		s := standings[i]
		return []string{
			strconv.Itoa(i + 1),
			s.Agent,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Draws),
		}
	})
}

func (w *Writer) writeCSV(name, what string, header []string, n int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}

	for i := 0; i < n; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}

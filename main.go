package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"adversary/config"
	"adversary/engine"
	"adversary/experiments"
	"adversary/experiments/metrics"
	"adversary/gamemaster"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        config.Config

	playStrategies [2]string
	playGames      int
	playQuiet      bool
	maxExpansions  int

	tournamentExclusions []string
	tournamentVerbose    bool
	reportDir            string
	metricsFile          string

	rootCmd = &cobra.Command{
		Use:           "adversary",
		Short:         "Play two-player games between search agents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			level, _ := zerolog.ParseLevel(cfg.LogLevel)
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	playCmd = &cobra.Command{
		Use:   "play GAME [P1 P2]",
		Short: "Play games between two agents, P1 moving first",
		Args:  cobra.RangeArgs(1, 3),
		RunE:  runPlay,
	}

	tournamentCmd = &cobra.Command{
		Use:   "tournament GAME",
		Short: "Play a round robin between every agent of a game",
		Args:  cobra.ExactArgs(1),
		RunE:  runTournament,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the games and their agents",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().IntVarP(&maxExpansions, "expansions", "e", 0, "successor generations allowed per move (default from config)")

	playCmd.Flags().StringVar(&playStrategies[0], "a1", "", "strategy of P1: minimax, alphabeta or tournament")
	playCmd.Flags().StringVar(&playStrategies[1], "a2", "", "strategy of P2: minimax, alphabeta or tournament")
	playCmd.Flags().IntVarP(&playGames, "games", "n", 1, "number of games to play")
	playCmd.Flags().BoolVarP(&playQuiet, "quiet", "q", false, "do not print the board")
	rootCmd.AddCommand(playCmd)

	tournamentCmd.Flags().StringSliceVarP(&tournamentExclusions, "exclude", "x", nil, "agents left out of the tournament")
	tournamentCmd.Flags().BoolVarP(&tournamentVerbose, "verbose", "v", false, "print every game")
	tournamentCmd.Flags().StringVar(&reportDir, "report-dir", "", "folder for CSV reports (default from config)")
	tournamentCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	rootCmd.AddCommand(tournamentCmd)

	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("adversary failed")
		os.Exit(1)
	}
}

func expansions() int {
	if maxExpansions > 0 {
		return maxExpansions
	}
	return cfg.MaxExpansions
}

func runPlay(cmd *cobra.Command, args []string) error {
	match := experiments.Match{
		Game:          args[0],
		Games:         playGames,
		MaxExpansions: expansions(),
		MaxPlies:      cfg.MaxPlies,
	}
	if len(args) == 2 {
		return fmt.Errorf("expected both P1 and P2, got only %q", args[1])
	}

	strategies := cfg.Strategies()
	for i := range match.Agents {
		match.Agents[i] = cfg.Players[i].Agent
		if len(args) == 3 {
			match.Agents[i] = args[i+1]
		}
		match.Strategies[i] = strategies[i]
		if playStrategies[i] != "" {
			s, err := engine.ParseStrategy(playStrategies[i])
			if err != nil {
				return err
			}
			match.Strategies[i] = s
		}
	}
	if !playQuiet {
		match.Renderer = engine.NewTextRenderer(cmd.OutOrStdout())
	}

	outcomes, err := experiments.PlayMatch(gamemaster.Default(), match)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, outcome := range outcomes {
		result := "draw"
		if !outcome.Draw {
			result = fmt.Sprintf("player %d (%s) wins", outcome.Winner, outcome.WinnerName)
		}
		if outcome.Reason != engine.Normal {
			result += fmt.Sprintf(" by %s", outcome.Reason)
		}
		fmt.Fprintf(out, "Game %d: %s\n", i+1, result)
	}
	return nil
}

func runTournament(cmd *cobra.Command, args []string) error {
	exclusions := cfg.Tournament.Exclusions
	if cmd.Flags().Changed("exclude") {
		exclusions = tournamentExclusions
	}
	dir := cfg.Tournament.ReportDir
	if reportDir != "" {
		dir = reportDir
	}
	textfile := cfg.Tournament.MetricsFile
	if metricsFile != "" {
		textfile = metricsFile
	}

	records := metrics.NewRecords()
	prom := metrics.NewPrometheus()
	t := experiments.Tournament{
		Game:          args[0],
		Exclusions:    exclusions,
		MaxExpansions: expansions(),
		MaxPlies:      cfg.MaxPlies,
		Recorder:      metrics.Tee(records, prom),
	}
	verbose := !cfg.Tournament.Quiet
	if cmd.Flags().Changed("verbose") {
		verbose = tournamentVerbose
	}
	if verbose {
		t.Renderer = engine.NewTextRenderer(cmd.OutOrStdout())
	}

	result, err := experiments.RunTournament(gamemaster.Default(), t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-4s %-12s %5s %4s %6s %5s\n", "rank", "agent", "score", "wins", "losses", "draws")
	for i, s := range result.Standings {
		fmt.Fprintf(out, "%-4d %-12s %5d %4d %6d %5d\n", i+1, s.Agent, s.Score, s.Wins, s.Losses, s.Draws)
	}

	setup := metrics.Setup{
		Game:          t.Game,
		Agents:        result.Agents,
		Excluded:      exclusions,
		Strategy:      engine.Tournament.String(),
		MaxExpansions: t.MaxExpansions,
		MaxPlies:      t.MaxPlies,
	}
	path, err := experiments.WriteReport(dir, setup, result.Standings, records)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored tournament report in %s", path)

	if textfile != "" {
		if err := os.MkdirAll(filepath.Dir(textfile), 0755); err != nil {
			return fmt.Errorf("failed to create metrics directory: %w", err)
		}
		if err := prom.WriteTextfile(textfile); err != nil {
			return err
		}
		log.Info().Msgf("stored metrics in %s", textfile)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	registry := gamemaster.Default()
	out := cmd.OutOrStdout()
	for _, name := range registry.Games() {
		agents, err := registry.Agents(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", name, strings.Join(agents, ", "))
	}
	return nil
}

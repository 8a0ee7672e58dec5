package experiments

import (
	"errors"
	"fmt"
	"sort"

	"adversary/engine"
	"adversary/experiments/metrics"
	"adversary/gamemaster"
	"adversary/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var ErrTooFewAgents = errors.New("a tournament needs at least two agents")

// Match describes a series of games between the same two agents.
type Match struct {
	Game          string
	Agents        [2]string
	Strategies    [2]engine.Strategy
	Games         int
	MaxExpansions int
	MaxPlies      int
	Renderer      engine.Renderer  // optional
	Recorder      metrics.Recorder // optional
}

// PlayMatch plays m.Games games, always with Agents[0] moving first. The state
// and history are reset between games.
func PlayMatch(registry *gamemaster.Registry, m Match) ([]engine.Outcome, error) {
	state, err := registry.NewState(m.Game)
	if err != nil {
		return nil, err
	}

	players := state.Players()
	agents := make([]agent.Agent, len(m.Agents))
	for i, name := range m.Agents {
		agents[i], err = registry.NewAgent(m.Game, name, players[i])
		if err != nil {
			return nil, err
		}
	}

	c, err := engine.New(state, agents, m.Strategies[:], m.MaxExpansions, controllerOptions(m.Game, m.MaxPlies, m.Renderer, m.Recorder)...)
	if err != nil {
		return nil, err
	}

	outcomes := make([]engine.Outcome, 0, m.Games)
	for i := 0; i < m.Games; i++ {
		if i > 0 {
			c.Reset()
		}
		log.Info().Msgf("starting game %d of %d between %s and %s...", i+1, m.Games, m.Agents[0], m.Agents[1])
		outcome := c.PlayGame()
		outcomes = append(outcomes, outcome)
		if outcome.Draw {
			log.Info().Msgf("completed game %d of %d: draw", i+1, m.Games)
		} else {
			log.Info().Msgf("completed game %d of %d with winner: %s", i+1, m.Games, outcome.WinnerName)
		}
	}
	return outcomes, nil
}

// Tournament describes a round robin in which every pair of agents plays twice,
// once with each agent moving first.
type Tournament struct {
	Game          string
	Exclusions    []string
	MaxExpansions int
	MaxPlies      int
	Renderer      engine.Renderer  // optional
	Recorder      metrics.Recorder // optional
}

type TournamentResult struct {
	Agents    []string
	Standings []metrics.Standing
	Outcomes  []engine.Outcome
}

// RunTournament plays every registered agent of t.Game except the exclusions
// against each other with the tournament strategy. A win scores one point.
func RunTournament(registry *gamemaster.Registry, t Tournament) (TournamentResult, error) {
	var result TournamentResult

	names, err := registry.Agents(t.Game)
	if err != nil {
		return result, err
	}
	for _, name := range names {
		if !slices.Contains(t.Exclusions, name) {
			result.Agents = append(result.Agents, name)
		}
	}
	if len(result.Agents) < 2 {
		return result, fmt.Errorf("%w: %v after exclusions", ErrTooFewAgents, result.Agents)
	}

	state, err := registry.NewState(t.Game)
	if err != nil {
		return result, err
	}
	players := state.Players()
	strategies := []engine.Strategy{engine.Tournament, engine.Tournament}

	table := make(map[string]*metrics.Standing, len(result.Agents))
	for _, name := range result.Agents {
		table[name] = &metrics.Standing{Agent: name}
	}

	var c *engine.Controller
	total := len(result.Agents) * (len(result.Agents) - 1)
	log.Info().Msgf("starting %s tournament with %d agents and %d games...", t.Game, len(result.Agents), total)

	for _, first := range result.Agents {
		for _, second := range result.Agents {
			if first == second {
				continue
			}

			agents := make([]agent.Agent, 2)
			for i, name := range []string{first, second} {
				agents[i], err = registry.NewAgent(t.Game, name, players[i])
				if err != nil {
					return result, err
				}
			}

			if c == nil {
				c, err = engine.New(state, agents, strategies, t.MaxExpansions, controllerOptions(t.Game, t.MaxPlies, t.Renderer, t.Recorder)...)
			} else {
				err = c.SetupPlayers(agents, strategies)
				c.Reset()
			}
			if err != nil {
				return result, err
			}

			log.Info().Msgf("game %d of %d: %s vs %s", len(result.Outcomes)+1, total, first, second)
			outcome := c.PlayGame()
			result.Outcomes = append(result.Outcomes, outcome)

			switch {
			case outcome.Draw:
				table[first].Draws++
				table[second].Draws++
			case outcome.WinnerName == first:
				table[first].Wins++
				table[first].Score++
				table[second].Losses++
			default:
				table[second].Wins++
				table[second].Score++
				table[first].Losses++
			}
		}
	}

	for _, name := range result.Agents {
		result.Standings = append(result.Standings, *table[name])
	}
	sort.SliceStable(result.Standings, func(i, j int) bool {
		a, b := result.Standings[i], result.Standings[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Agent < b.Agent
	})

	log.Info().Msgf("completed %s tournament", t.Game)
	return result, nil
}

// WriteReport stores the setup, standings and per-game records under a new
// timestamped folder of dir and returns the folder.
func WriteReport(dir string, setup metrics.Setup, standings []metrics.Standing, records *metrics.Records) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", err
	}

	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	log.Info().Msg("stored tournament setup")

	if err := writer.WriteStandings(standings); err != nil {
		return "", err
	}
	log.Info().Msg("stored standings")

	if err := writer.WriteGameRecords(records.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(records.Games, records.Moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func controllerOptions(game string, maxPlies int, renderer engine.Renderer, recorder metrics.Recorder) []engine.Option {
	options := []engine.Option{
		engine.WithGameName(game),
		engine.WithMaxPlies(maxPlies),
		engine.WithRecorder(recorder),
	}
	if renderer != nil {
		options = append(options, engine.WithRenderer(renderer))
	}
	return options
}

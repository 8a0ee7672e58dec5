package gamemaster

import (
	"sort"
	"sync"

	"adversary/game"
	"adversary/searcher/agent"

	"github.com/pkg/errors"
)

var (
	ErrUnknownGame  = errors.New("unknown game")
	ErrUnknownAgent = errors.New("unknown agent")
)

// StateFactory builds a game in its opening position.
type StateFactory func() game.State

// AgentFactory builds an agent named name that plays as id.
type AgentFactory func(name string, id game.PlayerID) agent.Agent

// Registry maps game names to their state constructor and the agents that can
// play them. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	games  map[string]StateFactory
	agents map[string]map[string]AgentFactory
}

func NewRegistry() *Registry {
	return &Registry{
		games:  map[string]StateFactory{},
		agents: map[string]map[string]AgentFactory{},
	}
}

// RegisterGame adds or replaces a game.
func (r *Registry) RegisterGame(name string, factory StateFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[name] = factory
	if r.agents[name] == nil {
		r.agents[name] = map[string]AgentFactory{}
	}
}

// RegisterAgent adds or replaces an agent for an already registered game.
func (r *Registry) RegisterAgent(gameName, agentName string, factory AgentFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	agents, ok := r.agents[gameName]
	if !ok {
		return errors.Wrapf(ErrUnknownGame, "cannot register agent %q for %q", agentName, gameName)
	}
	agents[agentName] = factory
	return nil
}

// NewState returns a fresh opening position of the named game.
func (r *Registry) NewState(gameName string) (game.State, error) {
	r.mu.RLock()
	factory, ok := r.games[gameName]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGame, "%q", gameName)
	}
	return factory(), nil
}

// NewAgent builds the agent registered as agentName for gameName. The agent is
// named after its registration.
func (r *Registry) NewAgent(gameName, agentName string, id game.PlayerID) (agent.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agents, ok := r.agents[gameName]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGame, "%q", gameName)
	}
	factory, ok := agents[agentName]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAgent, "%q for game %q", agentName, gameName)
	}
	return factory(agentName, id), nil
}

// Games lists the registered games in name order.
func (r *Registry) Games() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.games)
}

// Agents lists the agents registered for gameName in name order.
func (r *Registry) Agents(gameName string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agents, ok := r.agents[gameName]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGame, "%q", gameName)
	}
	return sortedKeys(agents), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

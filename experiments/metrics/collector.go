package metrics

import (
	"sync/atomic"
	"time"

	"adversary/game"
)

// SearchMetric describes one top-level search.
type SearchMetric struct {
	Algorithm string
	Horizon   int
	Duration  time.Duration
	Nodes     int
	Cutoffs   int
}

// MoveMetric describes one ply played through the controller. SearchMetric is
// empty for agents that do not search.
type MoveMetric struct {
	SearchMetric
	Step       int
	Player     game.PlayerID
	Agent      string
	Strategy   string
	Move       string
	Expansions int // budget units spent by the agent
	Reason     string
	Duration   time.Duration
}

// GameMetric describes one finished game.
type GameMetric struct {
	ID             string
	Game           string
	StartingPlayer game.PlayerID
	Winner         string // display name, empty on a draw
	Draw           bool
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string, horizon int)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	horizon   int
	startTime time.Time
	nodes     atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, horizon int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.horizon = horizon
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Horizon:   m.horizon,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, horizon int) {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddCutoff()                          {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }

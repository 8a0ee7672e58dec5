package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adversary"

// Prometheus counts games, plies and agent faults in its own registry, which
// can be dumped to a textfile for node_exporter.
type Prometheus struct {
	registry *prometheus.Registry

	// Labels: game, result (win, draw)
	GamesTotal *prometheus.CounterVec
	PliesTotal prometheus.Counter
	// Labels: kind (forfeit, illegal-move, agent-fault)
	AgentFaultsTotal *prometheus.CounterVec
	MoveExpansions   prometheus.Histogram
	// Labels: algorithm
	SearchNodes *prometheus.HistogramVec
}

func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Prometheus{
		registry: registry,
		GamesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_total",
			Help:      "Finished games by result.",
		}, []string{"game", "result"}),
		PliesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plies_total",
			Help:      "Moves requested from agents.",
		}),
		AgentFaultsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agent_faults_total",
			Help:      "Turns lost by forfeit, illegal move or agent failure.",
		}, []string{"kind"}),
		MoveExpansions: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "move_expansions",
			Help:      "Successor generations spent per move.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		SearchNodes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_nodes",
			Help:      "Positions visited by each move search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
	}
}

func (p *Prometheus) RecordMove(m MoveMetric) {
	p.PliesTotal.Inc()
	p.MoveExpansions.Observe(float64(m.Expansions))
	if m.Algorithm != "" {
		p.SearchNodes.WithLabelValues(m.Algorithm).Observe(float64(m.Nodes))
	}
	if m.Reason != "" {
		p.AgentFaultsTotal.WithLabelValues(m.Reason).Inc()
	}
}

func (p *Prometheus) RecordGame(g GameMetric) {
	result := "win"
	if g.Draw {
		result = "draw"
	}
	p.GamesTotal.WithLabelValues(g.Game, result).Inc()
}

// WriteTextfile writes every metric in the text exposition format.
func (p *Prometheus) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Package telemetry exports solver progress as Prometheus metrics. A
// Sink adapts the progress.Callback signature so any solver
// invocation can be observed without the solver package knowing
// Prometheus exists.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JiCorrales/traffic-jam-solver/internal/progress"
)

// Collectors holds every metric the solver fleet reports. Register
// once per process with a single *prometheus.Registry.
type Collectors struct {
	Expansions   *prometheus.CounterVec
	Elapsed      *prometheus.HistogramVec
	LastFrontier *prometheus.GaugeVec
}

// NewCollectors registers and returns the solver metric set against
// reg. Passing prometheus.DefaultRegisterer is the common case.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		Expansions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rushhour",
			Subsystem: "solver",
			Name:      "expansions_total",
			Help:      "Nodes expanded by solver invocations, by algorithm.",
		}, []string{"algorithm"}),
		Elapsed: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rushhour",
			Subsystem: "solver",
			Name:      "elapsed_seconds",
			Help:      "Elapsed wall-clock time at each sampled progress report, by algorithm.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
		LastFrontier: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "rushhour",
			Subsystem: "solver",
			Name:      "last_frontier_size",
			Help:      "Frontier size last reported by a solver invocation, by algorithm.",
		}, []string{"algorithm"}),
	}
}

// Sink is a progress.Callback bound to one algorithm label and scoped
// to a single solver invocation (its delta bookkeeping assumes
// Observe is called with monotonically increasing Metrics.Explored
// values from one search). Pass NewSink's Observe method as the
// Options.Progress field.
type Sink struct {
	collectors   *Collectors
	algorithm    string
	lastExplored int
}

// NewSink builds a Sink that reports every sample under the given
// algorithm label.
func NewSink(c *Collectors, algorithm string) *Sink {
	return &Sink{collectors: c, algorithm: algorithm}
}

// Observe implements progress.Callback.
func (s *Sink) Observe(m progress.Metrics) {
	delta := m.Explored - s.lastExplored
	s.lastExplored = m.Explored
	s.collectors.Expansions.WithLabelValues(s.algorithm).Add(float64(delta))
	s.collectors.LastFrontier.WithLabelValues(s.algorithm).Set(float64(m.Frontier))
	s.collectors.Elapsed.WithLabelValues(s.algorithm).Observe(float64(m.TimeMs) / 1000)
}

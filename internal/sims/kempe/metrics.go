package kempe

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Walk failure reasons used as label values.
const (
	reasonNonTermination = "non_termination"
	reasonBrokenChain    = "broken_chain"
)

// Metrics holds the collectors of one run. Each run owns its own registry so
// parallel runs never share series.
type Metrics struct {
	reg          *prometheus.Registry
	moves        prometheus.Counter
	chainLength  prometheus.Histogram
	violations   *prometheus.CounterVec
	walkFailures *prometheus.CounterVec
}

// NewMetrics builds and registers the run collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kempe_moves_total",
			Help: "Kempe-chain swaps applied to the lattice.",
		}),
		chainLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kempe_chain_length",
			Help:    "Number of sites on each applied Kempe chain.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kempe_constraint_violations_total",
			Help: "3-colour constraint violations found by the per-iteration checks.",
		}, []string{"kind"}),
		walkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kempe_walk_failures_total",
			Help: "Kempe-chain walks aborted because the colouring was inconsistent.",
		}, []string{"reason"}),
	}
	m.reg.MustRegister(m.moves, m.chainLength, m.violations, m.walkFailures)
	return m
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile dumps every series in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", path)
	}
	return nil
}

func (m *Metrics) observeMove(mv Move) {
	if m == nil {
		return
	}
	m.moves.Inc()
	m.chainLength.Observe(float64(mv.Length))
}

func (m *Metrics) observeViolation(kind ViolationKind) {
	if m == nil {
		return
	}
	m.violations.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) observeWalkFailure(err error) {
	if m == nil {
		return
	}
	reason := reasonBrokenChain
	if errors.Is(err, ErrWalkNonTermination) {
		reason = reasonNonTermination
	}
	m.walkFailures.WithLabelValues(reason).Inc()
}

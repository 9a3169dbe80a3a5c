package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/g101418/ReviewGrouping/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// It records per-phase durations and outcomes plus whole-attempt durations
// and outcomes. All collectors are registered once at construction time.
type PrometheusCollector struct {
	phaseDuration *prometheus.HistogramVec
	phaseResults  *prometheus.CounterVec
	solveDuration prometheus.Histogram
	solveResults  *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a metrics collector registered against the given
// registerer.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace prefix (e.g. "grouping")
//
// Returns:
//   - *PrometheusCollector: Initialized collector
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "grouping")
//	solver, err := grouping.New(roster, grouping.WithMetrics(collector))
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &PrometheusCollector{
		phaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of one placement phase.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"phase"}),
		phaseResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_results_total",
			Help:      "Placement phase outcomes by phase and result.",
		}, []string{"phase", "result"}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one full solve attempt including validation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
		solveResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_results_total",
			Help:      "Solve attempt outcomes by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(p.phaseDuration, p.phaseResults, p.solveDuration, p.solveResults)

	return p
}

// RecordPhase records the outcome of one placement phase.
func (p *PrometheusCollector) RecordPhase(phase types.Phase, seconds float64, success bool) {
	p.phaseDuration.WithLabelValues(phase.String()).Observe(seconds)
	p.phaseResults.WithLabelValues(phase.String(), resultLabel(success)).Inc()
}

// RecordSolve records the outcome of a full solve attempt.
func (p *PrometheusCollector) RecordSolve(seconds float64, success bool) {
	p.solveDuration.Observe(seconds)
	p.solveResults.WithLabelValues(resultLabel(success)).Inc()
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

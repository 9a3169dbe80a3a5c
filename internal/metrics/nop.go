// Package metrics provides built-in types.MetricsCollector implementations.
package metrics

import "github.com/g101418/ReviewGrouping/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	solver, err := grouping.New(roster, grouping.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPhase discards the phase metric.
func (n *NopMetrics) RecordPhase(_ /* phase */ types.Phase, _ /* seconds */ float64, _ /* success */ bool) {
	// No-op
}

// RecordSolve discards the solve metric.
func (n *NopMetrics) RecordSolve(_ /* seconds */ float64, _ /* success */ bool) {
	// No-op
}

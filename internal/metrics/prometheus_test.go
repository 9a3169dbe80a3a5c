package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/g101418/ReviewGrouping/types"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "grouping")

	collector.RecordPhase(types.PhaseLeaders, 0.01, true)
	collector.RecordPhase(types.PhaseExternals, 0.02, true)
	collector.RecordPhase(types.PhaseExternals, 0.03, false)
	collector.RecordSolve(0.1, true)
	collector.RecordSolve(0.2, false)

	t.Run("counts phase results by phase and outcome", func(t *testing.T) {
		require.Equal(t, 1.0, testutil.ToFloat64(collector.phaseResults.WithLabelValues("leaders", "success")))
		require.Equal(t, 1.0, testutil.ToFloat64(collector.phaseResults.WithLabelValues("externals", "success")))
		require.Equal(t, 1.0, testutil.ToFloat64(collector.phaseResults.WithLabelValues("externals", "failure")))
	})

	t.Run("counts solve results by outcome", func(t *testing.T) {
		require.Equal(t, 1.0, testutil.ToFloat64(collector.solveResults.WithLabelValues("success")))
		require.Equal(t, 1.0, testutil.ToFloat64(collector.solveResults.WithLabelValues("failure")))
	})

	t.Run("registers all collectors", func(t *testing.T) {
		families, err := reg.Gather()
		require.NoError(t, err)

		names := make([]string, 0, len(families))
		for _, mf := range families {
			names = append(names, mf.GetName())
		}

		require.Contains(t, names, "grouping_phase_duration_seconds")
		require.Contains(t, names, "grouping_phase_results_total")
		require.Contains(t, names, "grouping_solve_duration_seconds")
		require.Contains(t, names, "grouping_solve_results_total")
	})
}

func TestNop(t *testing.T) {
	// The nop collector must accept any input without side effects.
	nop := NewNop()
	nop.RecordPhase(types.PhaseGeneral, 1.5, false)
	nop.RecordSolve(0, true)
}

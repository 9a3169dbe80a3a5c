package types

// MetricsCollector defines methods for recording solver metrics.
//
// Implementations must be non-blocking and safe for concurrent use: the
// retry harness may run independent solve attempts in parallel, each of
// which records into the same collector.
type MetricsCollector interface {
	// RecordPhase records the outcome of one placement phase.
	//
	// Parameters:
	//   - phase: The placement phase that ran
	//   - seconds: Wall time the phase took
	//   - success: true if every person of the phase was placed
	RecordPhase(phase Phase, seconds float64, success bool)

	// RecordSolve records the outcome of a full solve attempt.
	//
	// Parameters:
	//   - seconds: Wall time of the whole attempt including validation
	//   - success: true if the attempt produced a validated table
	RecordSolve(seconds float64, success bool)
}

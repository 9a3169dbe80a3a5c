// Package harness implements the retry-with-next-seed loop around the
// solver.
//
// A phase failure is fatal only for its seed: a different exploration order
// can succeed where the previous one dead-ended. The Runner drives whole
// fresh solve attempts across a seed range, sequentially (Run) or over a
// worker pool (RunParallel), and stops loudly when the solver reports a
// post-hoc validation failure, which another seed cannot fix.
package harness

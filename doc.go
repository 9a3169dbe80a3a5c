// Package grouping assigns a fixed pool of review participants (group
// leaders, external specialists and general members) into a fixed number of
// groups under per-group capacity bounds, per-group external-specialist
// quotas and per-group province exclusions.
//
// The solver runs a three-phase constrained backtracking search over one
// shared assignment table (leaders, then external specialists, then general
// members) and certifies the result with an independent validator. It finds
// a feasible assignment satisfying the hard constraints and the one-person
// balance property; it is not an optimizer and does not rank solutions.
//
// # Quick Start
//
//	roster := types.NewRoster(leaders, members, exclusions)
//
//	solver, err := grouping.New(roster)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	table, err := solver.Solve(seed)
//	if err != nil {
//	    // Phase failures are fatal for this seed only; retry with another.
//	    log.Fatal(err)
//	}
//
// # Key Properties
//
//   - Deterministic: the same seed and roster always reproduce the same
//     table (or the same failure)
//   - Per-run isolation: every Solve builds a fresh assignment table, so a
//     Solver can be reused across seeds (and concurrently) without
//     cross-run leakage
//   - Independent certification: grouping.Check re-verifies every hard
//     constraint against the finished table without trusting the search
//
// # Seed Retries
//
// A phase failure means no assignment exists for that seed's exploration
// order, not necessarily for the roster. The harness package implements the
// retry-with-next-seed loop, sequentially or across a worker pool:
//
//	runner := harness.NewRunner(solver, harness.DefaultConfig())
//	result, err := runner.Run()
//
// See the source package for loading rosters from the line-based text format
// or from YAML, and the render package for human-readable output.
package grouping

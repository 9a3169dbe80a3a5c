package grouping

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/g101418/ReviewGrouping/internal/backtrack"
	"github.com/g101418/ReviewGrouping/internal/logger"
	"github.com/g101418/ReviewGrouping/internal/metrics"
	"github.com/g101418/ReviewGrouping/policy"
	"github.com/g101418/ReviewGrouping/types"
)

// Solver produces valid group assignments for one roster.
//
// A Solver is immutable after New: every Solve call builds a fresh per-run
// context (shuffled orderings, derived limits, empty table), so the same
// Solver can be reused for any number of seeds, sequentially or
// concurrently, without cross-run state leakage.
//
// Thread Safety:
//   - Solve is safe for concurrent use; each call owns its table exclusively
//   - The supplied Logger and MetricsCollector must be concurrency-safe
type Solver struct {
	roster  types.Roster
	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks
}

// New creates a Solver for the given roster.
//
// The roster is validated structurally (one leader per group, consistent
// group IDs, complete person records). Feasibility is not checked here: an
// infeasible roster surfaces as a phase failure or a validation failure at
// solve time.
//
// Parameters:
//   - roster: The validated input population and group definitions
//   - opts: Functional options (WithLogger, WithMetrics, WithHooks)
//
// Returns:
//   - *Solver: Initialized solver
//   - error: Wrapping ErrInvalidRoster when the roster is inconsistent
//
// Example:
//
//	solver, err := grouping.New(roster, grouping.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	table, err := solver.Solve(42)
func New(roster types.Roster, opts ...Option) (*Solver, error) {
	if err := roster.Validate(); err != nil {
		return nil, err
	}

	var options solverOptions
	for _, opt := range opts {
		opt(&options)
	}

	s := &Solver{
		roster:  roster,
		logger:  options.logger,
		metrics: options.metrics,
		hooks:   options.hooks,
	}
	if s.logger == nil {
		s.logger = logger.NewNop()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}

	return s, nil
}

// Roster returns the roster the solver was built from.
func (s *Solver) Roster() types.Roster {
	return s.roster
}

// Limits returns the capacity and quota bounds derived from the roster's
// population counts. The same bounds apply to every seed.
func (s *Solver) Limits() types.Limits {
	return types.ComputeLimits(s.roster.M(), s.roster.N(), s.roster.ExternalCount())
}

// run holds the entire mutable state of one solve attempt. A fresh run is
// built per Solve call and discarded with it.
type run struct {
	seed      int64
	leaders   []types.Person
	externals []types.Person
	general   []types.Person
	limits    types.Limits
	table     *types.Table
}

// phaseSpec pairs one placement phase with its people, policy and failure
// sentinel.
type phaseSpec struct {
	phase    types.Phase
	people   []types.Person
	policy   types.PlacementPolicy
	sentinel error
}

// Solve runs the three-phase backtracking pipeline for one seed and returns
// the validated assignment table.
//
// The seed deterministically shuffles the leader list and then the member
// list under a single generator, so changing the seed changes both orderings
// jointly and identical seeds reproduce identical tables. A failed phase is
// fatal for the seed: Solve performs no internal retries, and the caller may
// re-invoke with a different seed (see the harness package).
//
// Parameters:
//   - seed: Deterministic entropy for the exploration order
//
// Returns:
//   - *types.Table: Completed assignment, leader first in every group
//   - error: ErrInfeasibleLeaders, ErrInfeasibleExternals or
//     ErrInfeasibleGeneral when the respective phase cannot place everyone;
//     ErrValidationFailed when the independent check rejects the result
func (s *Solver) Solve(seed int64) (*types.Table, error) {
	start := time.Now()
	table, err := s.solve(seed)
	s.metrics.RecordSolve(time.Since(start).Seconds(), err == nil)

	return table, err
}

func (s *Solver) solve(seed int64) (*types.Table, error) {
	// With no externals at all the validator's one-per-group minimum cannot
	// hold, so the external phase is not even attempted.
	if s.roster.ExternalCount() == 0 {
		return nil, fmt.Errorf("%w: roster contains no external specialists", types.ErrInfeasibleExternals)
	}

	r := s.newRun(seed)
	s.logger.Debug("starting solve",
		"seed", seed,
		"groups", s.roster.M(),
		"members", s.roster.N(),
		"externals", s.roster.ExternalCount(),
		"sizeBounds", []int{r.limits.Lower, r.limits.Upper},
		"externalUpper", r.limits.ExternalUpper,
	)

	phases := []phaseSpec{
		{types.PhaseLeaders, r.leaders, policy.NewLeader(s.roster.Groups), types.ErrInfeasibleLeaders},
		{types.PhaseExternals, r.externals, policy.NewExternal(s.roster.Groups, r.limits), types.ErrInfeasibleExternals},
		{types.PhaseGeneral, r.general, policy.NewGeneral(s.roster.Groups, r.limits), types.ErrInfeasibleGeneral},
	}

	for _, spec := range phases {
		phaseStart := time.Now()
		placed := backtrack.Place(spec.people, r.table, spec.policy)
		s.metrics.RecordPhase(spec.phase, time.Since(phaseStart).Seconds(), placed)

		if !placed {
			s.logger.Debug("placement phase failed", "phase", spec.phase.String(), "seed", seed)
			return nil, fmt.Errorf("%w: seed %d", spec.sentinel, seed)
		}

		s.firePhaseCompleted(spec.phase, len(spec.people))
	}

	// Independent certification; the search's own bookkeeping is not trusted.
	if err := Check(r.table, &s.roster, r.limits); err != nil {
		s.logger.Error("validator rejected a completed assignment", "seed", seed, "error", err)
		return nil, fmt.Errorf("%w: %w", types.ErrValidationFailed, err)
	}

	s.fireSolved(seed, r.table)
	s.logger.Debug("solve succeeded", "seed", seed, "placed", r.table.Total())

	return r.table, nil
}

// newRun builds the per-run context: shuffled copies of the people lists,
// the derived limits and an empty table.
func (s *Solver) newRun(seed int64) *run {
	rng := rand.New(rand.NewSource(seed))

	leaders := slices.Clone(s.roster.Leaders)
	members := slices.Clone(s.roster.Members)

	// One generator, leaders first then members: both orderings change
	// jointly with the seed.
	rng.Shuffle(len(leaders), func(i, j int) {
		leaders[i], leaders[j] = leaders[j], leaders[i]
	})
	rng.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})

	r := &run{
		seed:    seed,
		leaders: leaders,
		limits:  types.ComputeLimits(s.roster.M(), s.roster.N(), s.roster.ExternalCount()),
		table:   types.NewTable(s.roster.M()),
	}

	// Split after the shuffle so both sub-lists keep their shuffled order.
	for _, p := range members {
		if p.External {
			r.externals = append(r.externals, p)
		} else {
			r.general = append(r.general, p)
		}
	}

	return r
}

func (s *Solver) firePhaseCompleted(phase types.Phase, placed int) {
	if s.hooks == nil || s.hooks.OnPhaseCompleted == nil {
		return
	}
	if err := s.hooks.OnPhaseCompleted(phase, placed); err != nil {
		s.logger.Warn("OnPhaseCompleted hook failed", "phase", phase.String(), "error", err)
	}
}

func (s *Solver) fireSolved(seed int64, table *types.Table) {
	if s.hooks == nil || s.hooks.OnSolved == nil {
		return
	}
	if err := s.hooks.OnSolved(seed, table); err != nil {
		s.logger.Warn("OnSolved hook failed", "seed", seed, "error", err)
	}
}

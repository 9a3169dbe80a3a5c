package harness

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"

	grouping "github.com/g101418/ReviewGrouping"
	"github.com/g101418/ReviewGrouping/internal/logger"
	"github.com/g101418/ReviewGrouping/types"
)

// Result is a successful harness outcome.
type Result struct {
	// Seed is the seed that produced the table.
	Seed int64

	// Table is the validated assignment table.
	Table *types.Table

	// Attempts is the number of solve attempts performed, the successful
	// one included. For RunParallel this counts attempts across all workers.
	Attempts int
}

// errSolved signals worker shutdown after a success; it never escapes the
// harness.
var errSolved = errors.New("solution found")

// Runner drives repeated solve attempts over a seed range.
type Runner struct {
	solver *grouping.Solver
	cfg    Config
	logger types.Logger
}

// Option configures a Runner with optional dependencies.
type Option func(*Runner)

// WithLogger sets a logger.
//
// Parameters:
//   - log: Logger implementation
//
// Returns:
//   - Option: Functional option for NewRunner
func WithLogger(log types.Logger) Option {
	return func(r *Runner) {
		r.logger = log
	}
}

// NewRunner creates a retry runner around the given solver.
//
// Parameters:
//   - solver: Solver to invoke once per seed
//   - cfg: Harness configuration
//   - opts: Functional options (WithLogger)
//
// Returns:
//   - *Runner: Initialized runner
//   - error: Configuration validation error
//
// Example:
//
//	runner, err := harness.NewRunner(solver, harness.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Run()
func NewRunner(solver *grouping.Solver, cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		solver: solver,
		cfg:    cfg,
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run tries seeds StartSeed, StartSeed+1, ... in order and returns the first
// success.
//
// Deterministic: the same solver and configuration always yield the same
// result seed. A post-hoc validation failure aborts the loop immediately:
// it indicates a roster the phase constraints cannot satisfy (or an internal
// defect), and no other seed can fix either.
//
// Returns:
//   - *Result: First successful seed, table and attempt count
//   - error: types.ErrValidationFailed on a loud failure;
//     types.ErrAttemptsExhausted when every seed failed
func (r *Runner) Run() (*Result, error) {
	for i := range r.cfg.MaxAttempts {
		seed := r.cfg.StartSeed + int64(i)

		table, err := r.solver.Solve(seed)
		if err == nil {
			r.logger.Info("assignment found", "seed", seed, "attempts", i+1)

			return &Result{Seed: seed, Table: table, Attempts: i + 1}, nil
		}

		if errors.Is(err, types.ErrValidationFailed) {
			r.logger.Error("validation failed, aborting retries", "seed", seed, "error", err)

			return nil, err
		}

		r.logger.Debug("solve attempt failed", "seed", seed, "error", err)
	}

	return nil, fmt.Errorf("%w: tried %d seeds starting at %d",
		types.ErrAttemptsExhausted, r.cfg.MaxAttempts, r.cfg.StartSeed)
}

// RunParallel fans solve attempts out over Parallelism workers, each
// claiming the next unclaimed seed in the range.
//
// Every attempt is still a whole independent run over its own table; only
// attempts run concurrently, never the inside of a search. The first
// discovered success wins and cancels the remaining workers, so unlike Run
// the returned seed is not guaranteed to be the lowest successful one.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - *Result: A successful seed, table and total attempt count
//   - error: ctx.Err() on cancellation; types.ErrValidationFailed on a loud
//     failure; types.ErrAttemptsExhausted when every seed failed
func (r *Runner) RunParallel(ctx context.Context) (*Result, error) {
	if r.cfg.Parallelism == 1 {
		return r.Run()
	}

	var (
		next     atomic.Int64 // next unclaimed attempt index
		attempts = xsync.NewCounter()
		mu       sync.Mutex
		found    *Result
	)

	eg, ctx := errgroup.WithContext(ctx)
	for range r.cfg.Parallelism {
		eg.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				idx := next.Add(1) - 1
				if idx >= int64(r.cfg.MaxAttempts) {
					return nil
				}

				seed := r.cfg.StartSeed + idx
				attempts.Inc()

				table, err := r.solver.Solve(seed)
				if err == nil {
					mu.Lock()
					if found == nil {
						found = &Result{Seed: seed, Table: table}
					}
					mu.Unlock()

					return errSolved
				}

				if errors.Is(err, types.ErrValidationFailed) {
					r.logger.Error("validation failed, aborting retries", "seed", seed, "error", err)

					return err
				}

				r.logger.Debug("solve attempt failed", "seed", seed, "error", err)
			}
		})
	}

	err := eg.Wait()

	mu.Lock()
	result := found
	mu.Unlock()

	if result != nil {
		result.Attempts = int(attempts.Value())
		r.logger.Info("assignment found", "seed", result.Seed, "attempts", result.Attempts)

		return result, nil
	}

	if err != nil && !errors.Is(err, errSolved) {
		return nil, err
	}

	return nil, fmt.Errorf("%w: tried %d seeds starting at %d",
		types.ErrAttemptsExhausted, r.cfg.MaxAttempts, r.cfg.StartSeed)
}

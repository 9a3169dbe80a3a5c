package types

import "errors"

// Sentinel errors for the ReviewGrouping library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components use these sentinels for known error conditions
// and wrap them with context via fmt.Errorf("...: %w", err).

// Solver errors - returned by Solver.Solve.
var (
	// ErrInvalidRoster is returned when the roster fails structural validation.
	ErrInvalidRoster = errors.New("invalid roster")

	// ErrInfeasibleLeaders is returned when no province-respecting
	// one-leader-per-group assignment exists. Fatal for the seed; the caller
	// may retry the whole solve with a different seed.
	ErrInfeasibleLeaders = errors.New("leader placement infeasible")

	// ErrInfeasibleExternals is returned when the external specialists cannot
	// be packed under the quota and capacity constraints, or when the roster
	// contains no external specialists at all. Fatal for the seed.
	ErrInfeasibleExternals = errors.New("external specialist placement infeasible")

	// ErrInfeasibleGeneral is returned when the general members cannot fill
	// the remaining capacity. Fatal for the seed.
	ErrInfeasibleGeneral = errors.New("general member placement infeasible")

	// ErrValidationFailed is returned when the search reported success but
	// the independent validator disagrees. This indicates either an
	// infeasible roster the phase constraints cannot detect (for example
	// fewer externals than groups) or an internal defect; callers must not
	// silently retry it with another seed.
	ErrValidationFailed = errors.New("post-hoc validation failed")
)

// Validator errors - constraint categories reported by Check.
var (
	// ErrGroupTooLarge is returned when a group exceeds the per-group upper
	// size bound.
	ErrGroupTooLarge = errors.New("group exceeds size upper bound")

	// ErrGroupTooSmall is returned when a group falls below the per-group
	// lower size bound.
	ErrGroupTooSmall = errors.New("group below size lower bound")

	// ErrProvinceConflict is returned when a person's province appears in
	// their group's excluded-provinces list.
	ErrProvinceConflict = errors.New("province conflicts with group exclusion")

	// ErrExternalOverQuota is returned when a group holds more external
	// specialists than the per-group external ceiling.
	ErrExternalOverQuota = errors.New("group exceeds external specialist quota")

	// ErrMissingExternal is returned when a group holds no external
	// specialist at all.
	ErrMissingExternal = errors.New("group has no external specialist")

	// ErrSizeSpread is returned when the largest and smallest groups differ
	// by more than one person.
	ErrSizeSpread = errors.New("group size spread exceeds one")

	// ErrPopulationMismatch is returned when the placed population does not
	// equal M+N.
	ErrPopulationMismatch = errors.New("placed population does not match roster")
)

// Source errors - returned by roster sources.
var (
	// ErrMalformedInput is returned when the textual input cannot be parsed
	// into a roster.
	ErrMalformedInput = errors.New("malformed roster input")
)

// Harness errors - returned by the retry harness.
var (
	// ErrAttemptsExhausted is returned when no seed in the configured range
	// produced a valid assignment.
	ErrAttemptsExhausted = errors.New("all solve attempts exhausted")
)

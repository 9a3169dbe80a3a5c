package grouping

import "github.com/g101418/ReviewGrouping/types"

// Sentinel errors returned by the Solver, aliased from the types subpackage
// so errors.Is works regardless of which package a caller imports.
var (
	// ErrInvalidRoster is returned by New when the roster fails validation.
	ErrInvalidRoster = types.ErrInvalidRoster

	// ErrInfeasibleLeaders is returned when no province-respecting
	// one-leader-per-group assignment exists for this seed.
	ErrInfeasibleLeaders = types.ErrInfeasibleLeaders

	// ErrInfeasibleExternals is returned when the external specialists cannot
	// be packed under the quota and capacity constraints for this seed, or
	// when the roster has no external specialists at all.
	ErrInfeasibleExternals = types.ErrInfeasibleExternals

	// ErrInfeasibleGeneral is returned when the general members cannot fill
	// the remaining capacity for this seed.
	ErrInfeasibleGeneral = types.ErrInfeasibleGeneral

	// ErrValidationFailed is returned when the search reported success but
	// the independent validator disagrees. Callers must not retry it with
	// another seed.
	ErrValidationFailed = types.ErrValidationFailed
)

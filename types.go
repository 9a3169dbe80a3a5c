package grouping

import "github.com/g101418/ReviewGrouping/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations. Internal packages
// depend on `types` directly, keeping the dependency graph cycle-free while
// users get convenient `grouping.Person`, `grouping.Table`, etc.
type (
	Person = types.Person
	Group  = types.Group
	Table  = types.Table
	Roster = types.Roster
	Limits = types.Limits
	Phase  = types.Phase
	Role   = types.Role
)

// Re-export interfaces from the types subpackage for convenience.
type (
	PlacementPolicy  = types.PlacementPolicy
	RosterSource     = types.RosterSource
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
)

// Re-export Phase constants from the types subpackage.
const (
	PhaseLeaders   = types.PhaseLeaders
	PhaseExternals = types.PhaseExternals
	PhaseGeneral   = types.PhaseGeneral
)

// Re-export Role constants from the types subpackage.
const (
	RoleLeader = types.RoleLeader
	RoleMember = types.RoleMember
)

// ComputeLimits re-exports the limit derivation from the types subpackage.
//
// See types.ComputeLimits for the derivation rules, including the
// zero-remainder touch-quota remapping.
func ComputeLimits(m, n, e int) Limits {
	return types.ComputeLimits(m, n, e)
}

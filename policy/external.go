package policy

import "github.com/g101418/ReviewGrouping/types"

// External implements the external-specialist placement policy for the
// second solve phase.
type External struct {
	groups []types.Group
	limits types.Limits
}

var _ types.PlacementPolicy = (*External)(nil)

// NewExternal creates the external-specialist placement policy.
//
// An external member is admissible for a group when all of the following
// hold against the current table:
//
//  1. The member's province is not excluded by the group
//  2. The group's external count is below the per-group external ceiling
//  3. The group's total size is below the per-group size ceiling
//  4. If this placement would put the group at (or past) the external
//     ceiling, the number of groups already at the ceiling must still be
//     below the external touch quota
//
// Rule 4 stops externals from concentrating into more groups than the quota
// allows, which would starve the remaining groups below the one-external
// minimum the validator enforces.
//
// Parameters:
//   - groups: Group definitions with their province exclusions
//   - limits: Derived bounds for the current run
//
// Returns:
//   - *External: Initialized policy
func NewExternal(groups []types.Group, limits types.Limits) *External {
	return &External{groups: groups, limits: limits}
}

// Admit reports whether the external member may join the given group right now.
func (e *External) Admit(person types.Person, groupID int, table *types.Table) bool {
	if e.groups[groupID].Excludes(person.Province) {
		return false
	}

	externals := table.ExternalCount(groupID)
	if externals >= e.limits.ExternalUpper {
		return false
	}

	if table.Size(groupID) >= e.limits.Upper {
		return false
	}

	// Quota check: would this placement newly put the group at the ceiling?
	// The tally is recomputed against the live table on every candidacy.
	if externals+1 >= e.limits.ExternalUpper {
		if touchedGroups(table, e.limits.ExternalUpper) >= e.limits.TouchQuotaExternal {
			return false
		}
	}

	return true
}

// touchedGroups counts groups whose external tally has reached the ceiling.
func touchedGroups(table *types.Table, ceiling int) int {
	touched := 0
	for groupID := range table.NumGroups() {
		if table.ExternalCount(groupID) >= ceiling {
			touched++
		}
	}

	return touched
}

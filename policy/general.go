package policy

import "github.com/g101418/ReviewGrouping/types"

// General implements the general-member placement policy for the third
// solve phase.
type General struct {
	groups []types.Group
	limits types.Limits
}

var _ types.PlacementPolicy = (*General)(nil)

// NewGeneral creates the general-member placement policy.
//
// A general member is admissible for a group when the member's province is
// not excluded, the group's size is below the per-group ceiling, and, if
// this placement would put the group at the ceiling, the number of groups
// already at the ceiling is still below the size touch quota. The quota is
// the same mechanism the External policy applies, taken over total sizes
// instead of external counts.
//
// Parameters:
//   - groups: Group definitions with their province exclusions
//   - limits: Derived bounds for the current run
//
// Returns:
//   - *General: Initialized policy
func NewGeneral(groups []types.Group, limits types.Limits) *General {
	return &General{groups: groups, limits: limits}
}

// Admit reports whether the member may join the given group right now.
func (g *General) Admit(person types.Person, groupID int, table *types.Table) bool {
	if g.groups[groupID].Excludes(person.Province) {
		return false
	}

	size := table.Size(groupID)
	if size >= g.limits.Upper {
		return false
	}

	if size+1 >= g.limits.Upper {
		if fullGroups(table, g.limits.Upper) >= g.limits.TouchQuotaSize {
			return false
		}
	}

	return true
}

// fullGroups counts groups whose size has reached the ceiling.
func fullGroups(table *types.Table, ceiling int) int {
	full := 0
	for groupID := range table.NumGroups() {
		if table.Size(groupID) >= ceiling {
			full++
		}
	}

	return full
}

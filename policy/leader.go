package policy

import "github.com/g101418/ReviewGrouping/types"

// Leader implements the leader-placement policy for the first solve phase.
type Leader struct {
	groups []types.Group
}

var _ types.PlacementPolicy = (*Leader)(nil)

// NewLeader creates the leader-placement policy.
//
// A leader is admissible for a group when the leader's province is not
// excluded by the group and the group is still empty. The emptiness check is
// what makes the leader the first element of every group's sequence.
//
// Parameters:
//   - groups: Group definitions with their province exclusions
//
// Returns:
//   - *Leader: Initialized policy
func NewLeader(groups []types.Group) *Leader {
	return &Leader{groups: groups}
}

// Admit reports whether the leader may head the given group right now.
func (l *Leader) Admit(person types.Person, groupID int, table *types.Table) bool {
	if l.groups[groupID].Excludes(person.Province) {
		return false
	}

	// One leader per group; the leader must be the sole occupant at this phase.
	return table.Size(groupID) == 0
}

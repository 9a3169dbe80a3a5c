// Package backtrack implements the generic depth-first placement search
// shared by all solve phases.
package backtrack

import "github.com/g101418/ReviewGrouping/types"

// Place assigns every person in the given list to exactly one group, in list
// order, such that each placement was admitted by the policy at the time it
// was made.
//
// The search is classic chronological backtracking with no forward checking
// or constraint propagation: at person i it tries candidate groups 0..M-1 in
// ascending id order, appends on admission, recurses, and pops the exact
// placement back off when the recursion fails. Worst-case time is exponential
// in the number of people (up to M^N candidacies); the policy is the only
// pruning. That bound is an accepted property of the design, not a target
// for optimization.
//
// The table is mutated in place during the search. On success it holds a
// consistent solution to the sub-problem the policy defines; on failure it is
// restored to exactly its pre-call state.
//
// Parameters:
//   - people: Ordered list of people to place (order fixes the search tree)
//   - table: Shared assignment table, mutated in place
//   - policy: Admissibility predicate evaluated fresh per candidacy
//
// Returns:
//   - bool: true if every person was placed
func Place(people []types.Person, table *types.Table, policy types.PlacementPolicy) bool {
	return place(0, people, table, policy)
}

func place(index int, people []types.Person, table *types.Table, policy types.PlacementPolicy) bool {
	if index == len(people) {
		return true
	}

	person := people[index]
	for groupID := range table.NumGroups() {
		if !policy.Admit(person, groupID, table) {
			continue
		}

		table.Append(groupID, person)
		if place(index+1, people, table, policy) {
			return true
		}
		// Undo must mirror the append exactly so failed branches leak nothing.
		table.Pop(groupID)
	}

	return false
}

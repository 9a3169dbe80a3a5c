package types

// PlacementPolicy decides whether a person may currently join a group.
//
// Policies parameterize the generic backtracking engine: each placement
// phase supplies its own policy (leader placement, external-quota-aware
// placement, capacity-aware placement) while the engine's search loop stays
// identical across phases.
//
// Policy implementations should:
//   - Be deterministic (same table state, same answer)
//   - Evaluate against the table as it currently stands; the engine calls
//     Admit fresh for every candidacy, including after backtracking
//   - Be stateless; all mutable state lives in the Table
type PlacementPolicy interface {
	// Admit reports whether person may be appended to the given group in the
	// table's current state.
	//
	// Parameters:
	//   - person: The person being placed
	//   - groupID: Candidate group in [0, M)
	//   - table: Current assignment table (read-only for the policy)
	//
	// Returns:
	//   - bool: true if the placement is admissible right now
	Admit(person Person, groupID int, table *Table) bool
}

package types

import "slices"

// Table is the assignment table: one ordered person sequence per group, the
// leader always first.
//
// The Table is the sole piece of mutable state during a solve. It is
// exclusively owned by the in-flight search, mutated in place by the
// backtracking engine (append on placement, pop on undo), and read-only once
// the solve returns. A fresh Table is built for every run, so repeated solves
// with different seeds cannot contaminate each other.
//
// Counting methods re-tally from the stored sequences on every call rather
// than maintaining incremental counters. The engine's undo step must stay
// exactly symmetric with its append, and recounting keeps the table unable
// to drift from the sequences it stores.
type Table struct {
	groups [][]Person
}

// NewTable creates an empty assignment table for the given number of groups.
//
// Parameters:
//   - numGroups: Number of groups M (must be >= 1)
//
// Returns:
//   - *Table: Empty table with numGroups empty sequences
func NewTable(numGroups int) *Table {
	return &Table{groups: make([][]Person, numGroups)}
}

// NumGroups returns the number of groups in the table.
func (t *Table) NumGroups() int {
	return len(t.groups)
}

// Append places a person at the end of the given group's sequence.
func (t *Table) Append(groupID int, p Person) {
	t.groups[groupID] = append(t.groups[groupID], p)
}

// Pop removes and returns the most recently appended person of the given
// group. It is the exact inverse of Append and panics if the group is empty;
// the engine only pops what it appended.
func (t *Table) Pop(groupID int) Person {
	seq := t.groups[groupID]
	p := seq[len(seq)-1]
	t.groups[groupID] = seq[:len(seq)-1]

	return p
}

// Size returns the current number of people in the given group.
func (t *Table) Size(groupID int) int {
	return len(t.groups[groupID])
}

// ExternalCount returns the current number of external specialists in the
// given group, recounted from the stored sequence.
func (t *Table) ExternalCount(groupID int) int {
	count := 0
	for _, p := range t.groups[groupID] {
		if p.External {
			count++
		}
	}

	return count
}

// Persons returns a copy of the given group's ordered person sequence.
// The leader, when placed, is the first element.
func (t *Table) Persons(groupID int) []Person {
	return slices.Clone(t.groups[groupID])
}

// Leader returns the first occupant of the given group.
//
// Returns:
//   - Person: The group's leader
//   - bool: false if the group is still empty
func (t *Table) Leader(groupID int) (Person, bool) {
	if len(t.groups[groupID]) == 0 {
		return Person{}, false
	}

	return t.groups[groupID][0], true
}

// Total returns the number of people currently placed across all groups.
func (t *Table) Total() int {
	total := 0
	for _, seq := range t.groups {
		total += len(seq)
	}

	return total
}

// Clone returns a deep copy of the table. The copy shares no sequence
// storage with the original, so it stays valid after further mutation.
func (t *Table) Clone() *Table {
	clone := &Table{groups: make([][]Person, len(t.groups))}
	for i, seq := range t.groups {
		clone.groups[i] = slices.Clone(seq)
	}

	return clone
}

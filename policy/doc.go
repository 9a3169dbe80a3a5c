// Package policy provides the built-in placement policy implementations.
//
// Placement policies decide whether a person may currently join a group and
// parameterize the generic backtracking engine for each solve phase:
//
//   - Leader: Province exclusion plus empty-group check; guarantees the
//     leader is the first occupant of every group
//   - External: Province exclusion, per-group external ceiling, per-group
//     size ceiling, and the external touch quota
//   - General: Province exclusion, per-group size ceiling, and the size
//     touch quota
//
// The quota checks re-scan every group's current tally on each candidacy
// rather than caching counts. That costs O(M) per check with M small, and
// keeps the policies stateless across backtracking steps.
//
// Custom policies can be supplied by satisfying the types.PlacementPolicy
// interface.
package policy

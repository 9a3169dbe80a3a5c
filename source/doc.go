// Package source provides built-in roster source implementations.
//
// Roster sources parse input into the validated roster the solver consumes.
// The package includes:
//
//   - Text: The line-based roster format (counts, person lines, exclusion lines)
//   - YAML: YAML roster documents
//
// Custom sources can be implemented by satisfying the types.RosterSource
// interface.
package source

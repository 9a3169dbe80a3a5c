package types

import "slices"

// Group describes one review group: its identifier and the provinces whose
// holders may never be placed in it.
//
// Groups carry no membership themselves; the Table owns the person sequences
// produced during a solve.
type Group struct {
	// ID is the group identifier in [0, M).
	ID int `json:"id" yaml:"id"`

	// ExcludedProvinces lists provinces barred from this group.
	// Order is irrelevant; membership is what matters.
	ExcludedProvinces []string `json:"excludedProvinces" yaml:"excluded"`
}

// Excludes reports whether the given province is barred from this group.
//
// Parameters:
//   - province: Province name to check
//
// Returns:
//   - bool: true if a person from the province may not join this group
func (g Group) Excludes(province string) bool {
	return slices.Contains(g.ExcludedProvinces, province)
}

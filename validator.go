package grouping

import (
	"fmt"

	"github.com/g101418/ReviewGrouping/types"
)

// Check independently verifies every hard constraint against a completed
// assignment table.
//
// Check recomputes all tallies from the table itself rather than trusting
// the search's bookkeeping, and it is the sole source of truth for whether
// an assignment is acceptable. It can be re-run any number of times on any
// table, including tables not produced by this solver, and always yields
// the same verdict for the same table.
//
// Verified constraints, in order:
//   - Every group size within [limits.Lower, limits.Upper]
//   - No person's province in their group's exclusion list
//   - Every group's external count within [1, limits.ExternalUpper]
//   - Total placed population equal to M+N
//   - Size spread across groups at most one
//
// Parameters:
//   - table: Completed assignment table
//   - roster: The roster the table was built from (group exclusions, counts)
//   - limits: Derived bounds for the population
//
// Returns:
//   - error: A diagnostic for the first violated constraint, wrapping its
//     category sentinel (ErrGroupTooLarge, ErrProvinceConflict, ...); nil
//     when the assignment satisfies every constraint
func Check(table *types.Table, roster *types.Roster, limits types.Limits) error {
	if table.NumGroups() != roster.M() {
		return fmt.Errorf("%w: table has %d groups, roster defines %d",
			types.ErrPopulationMismatch, table.NumGroups(), roster.M())
	}

	total := 0
	smallest := -1
	largest := -1

	for groupID := range table.NumGroups() {
		size := table.Size(groupID)
		if size > limits.Upper {
			return fmt.Errorf("%w: group %d has %d people, upper bound is %d",
				types.ErrGroupTooLarge, groupID, size, limits.Upper)
		}
		if size < limits.Lower {
			return fmt.Errorf("%w: group %d has %d people, lower bound is %d",
				types.ErrGroupTooSmall, groupID, size, limits.Lower)
		}

		externals := 0
		for _, p := range table.Persons(groupID) {
			total++
			if p.External {
				externals++
			}
			if roster.Groups[groupID].Excludes(p.Province) {
				return fmt.Errorf("%w: %s (%s) placed in group %d which excludes %v",
					types.ErrProvinceConflict, p.Name, p.Province, groupID,
					roster.Groups[groupID].ExcludedProvinces)
			}
		}

		if externals > limits.ExternalUpper {
			return fmt.Errorf("%w: group %d has %d externals, quota is %d",
				types.ErrExternalOverQuota, groupID, externals, limits.ExternalUpper)
		}
		if externals < 1 {
			return fmt.Errorf("%w: group %d", types.ErrMissingExternal, groupID)
		}

		if smallest < 0 || size < smallest {
			smallest = size
		}
		if size > largest {
			largest = size
		}
	}

	if total != roster.Total() {
		return fmt.Errorf("%w: placed %d people, roster has %d",
			types.ErrPopulationMismatch, total, roster.Total())
	}

	if largest-smallest > 1 {
		return fmt.Errorf("%w: sizes range from %d to %d",
			types.ErrSizeSpread, smallest, largest)
	}

	return nil
}

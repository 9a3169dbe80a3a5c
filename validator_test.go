package grouping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/g101418/ReviewGrouping/types"
)

// buildTable assembles a table directly, bypassing the solver, so each
// validation rule can be exercised in isolation.
func buildTable(groups ...[]types.Person) *types.Table {
	table := types.NewTable(len(groups))
	for groupID, persons := range groups {
		for _, p := range persons {
			table.Append(groupID, p)
		}
	}

	return table
}

func person(name, province string) types.Person {
	return types.Person{Name: name, Province: province, Role: types.RoleMember}
}

func external(name, province string) types.Person {
	return types.Person{Name: name, Province: province, External: true, Role: types.RoleMember}
}

func TestCheck(t *testing.T) {
	leaders := []types.Person{
		{Name: "L1", Province: "north"},
		{Name: "L2", Province: "south"},
	}
	members := []types.Person{
		{Name: "A", Province: "east", External: true},
		{Name: "B", Province: "west", External: true},
		{Name: "C", Province: "north"},
		{Name: "D", Province: "south"},
	}
	roster := types.NewRoster(leaders, members, [][]string{nil, {"east"}})
	limits := types.ComputeLimits(roster.M(), roster.N(), roster.ExternalCount())

	valid := func() *types.Table {
		return buildTable(
			[]types.Person{person("L1", "north"), external("A", "east"), person("C", "north")},
			[]types.Person{person("L2", "south"), external("B", "west"), person("D", "south")},
		)
	}

	t.Run("accepts a correct assignment", func(t *testing.T) {
		require.NoError(t, Check(valid(), &roster, limits))
	})

	t.Run("repeated checks agree", func(t *testing.T) {
		table := valid()
		require.NoError(t, Check(table, &roster, limits))
		require.NoError(t, Check(table, &roster, limits))
	})

	t.Run("rejects a group count mismatch", func(t *testing.T) {
		table := types.NewTable(3)

		err := Check(table, &roster, limits)
		require.ErrorIs(t, err, types.ErrPopulationMismatch)
	})

	t.Run("rejects an oversized group", func(t *testing.T) {
		table := buildTable(
			[]types.Person{person("L1", "north"), external("A", "east"), person("C", "north"), person("D", "south")},
			[]types.Person{person("L2", "south"), external("B", "west")},
		)

		err := Check(table, &roster, limits)
		require.ErrorIs(t, err, types.ErrGroupTooLarge)
	})

	t.Run("rejects an undersized group", func(t *testing.T) {
		table := buildTable(
			[]types.Person{person("L1", "north"), external("A", "east")},
			[]types.Person{person("L2", "south"), external("B", "west"), person("C", "north"), person("D", "south")},
		)

		err := Check(table, &roster, limits)
		require.ErrorIs(t, err, types.ErrGroupTooSmall)
	})

	t.Run("rejects a province conflict", func(t *testing.T) {
		// A's province is excluded by group 1.
		table := buildTable(
			[]types.Person{person("L1", "north"), external("B", "west"), person("C", "north")},
			[]types.Person{person("L2", "south"), external("A", "east"), person("D", "south")},
		)

		err := Check(table, &roster, limits)
		require.ErrorIs(t, err, types.ErrProvinceConflict)
	})

	t.Run("rejects a group above the external quota", func(t *testing.T) {
		table := buildTable(
			[]types.Person{person("L1", "north"), external("A", "east"), external("B", "west")},
			[]types.Person{person("L2", "south"), person("C", "north"), person("D", "south")},
		)

		err := Check(table, &roster, limits)
		require.ErrorIs(t, err, types.ErrExternalOverQuota)
	})

	t.Run("rejects a group with no external", func(t *testing.T) {
		// Loosen the quota so both externals fit in group 0, leaving
		// group 1 without one.
		loose := limits
		loose.ExternalUpper = 2

		table := buildTable(
			[]types.Person{person("L1", "north"), external("A", "east"), external("B", "west")},
			[]types.Person{person("L2", "south"), person("C", "north"), person("D", "south")},
		)

		err := Check(table, &roster, loose)
		require.ErrorIs(t, err, types.ErrMissingExternal)
	})

	t.Run("rejects a population mismatch", func(t *testing.T) {
		// One person short of the roster; the lower bound is loosened so
		// the population rule is the one that trips.
		wide := limits
		wide.Lower = 2

		table := buildTable(
			[]types.Person{person("L1", "north"), external("A", "east")},
			[]types.Person{person("L2", "south"), external("B", "west"), person("C", "north")},
		)

		err := Check(table, &roster, wide)
		require.ErrorIs(t, err, types.ErrPopulationMismatch)
	})

	t.Run("rejects a size spread above one", func(t *testing.T) {
		// Bounds widened by hand so the spread rule is the one that trips.
		wide := types.Limits{Lower: 2, Upper: 4, ExternalUpper: 1, TouchQuotaSize: 2, TouchQuotaExternal: 2}

		table := buildTable(
			[]types.Person{person("L1", "north"), external("A", "east")},
			[]types.Person{person("L2", "south"), external("B", "west"), person("C", "north"), person("D", "south")},
		)

		err := Check(table, &roster, wide)
		require.ErrorIs(t, err, types.ErrSizeSpread)
	})
}

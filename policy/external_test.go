package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/g101418/ReviewGrouping/types"
)

func TestExternal_Admit(t *testing.T) {
	limits := types.Limits{
		Lower:              2,
		Upper:              3,
		ExternalUpper:      1,
		TouchQuotaSize:     1,
		TouchQuotaExternal: 1,
	}
	specialist := types.Person{Name: "X", Province: "east", External: true}

	t.Run("admits under all bounds", func(t *testing.T) {
		policy := NewExternal(testGroups(nil, nil), limits)
		table := types.NewTable(2)
		table.Append(0, types.Person{Name: "L0", Province: "north"})
		table.Append(1, types.Person{Name: "L1", Province: "south"})

		require.True(t, policy.Admit(specialist, 0, table))
	})

	t.Run("rejects an excluded province", func(t *testing.T) {
		policy := NewExternal(testGroups([]string{"east"}, nil), limits)
		table := types.NewTable(2)

		require.False(t, policy.Admit(specialist, 0, table))
	})

	t.Run("rejects a group at its external ceiling", func(t *testing.T) {
		policy := NewExternal(testGroups(nil, nil), limits)
		table := types.NewTable(2)
		table.Append(0, types.Person{Name: "E0", Province: "north", External: true})

		require.False(t, policy.Admit(specialist, 0, table))
	})

	t.Run("rejects a group at its size ceiling", func(t *testing.T) {
		wide := limits
		wide.ExternalUpper = 5
		policy := NewExternal(testGroups(nil, nil), wide)

		table := types.NewTable(2)
		for _, name := range []string{"a", "b", "c"} {
			table.Append(0, types.Person{Name: name, Province: "north"})
		}

		require.False(t, policy.Admit(specialist, 0, table))
	})

	t.Run("rejects a placement that would exceed the touch quota", func(t *testing.T) {
		policy := NewExternal(testGroups(nil, nil), limits)
		table := types.NewTable(2)
		// Group 0 already sits at the ceiling; the quota of 1 is spent.
		table.Append(0, types.Person{Name: "E0", Province: "north", External: true})

		require.False(t, policy.Admit(specialist, 1, table))
	})

	t.Run("admits the same placement when the quota allows it", func(t *testing.T) {
		roomy := limits
		roomy.TouchQuotaExternal = 2
		policy := NewExternal(testGroups(nil, nil), roomy)

		table := types.NewTable(2)
		table.Append(0, types.Person{Name: "E0", Province: "north", External: true})

		require.True(t, policy.Admit(specialist, 1, table))
	})
}

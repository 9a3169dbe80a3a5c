package backtrack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/g101418/ReviewGrouping/types"
)

// policyFunc adapts a plain function to types.PlacementPolicy.
type policyFunc func(person types.Person, groupID int, table *types.Table) bool

func (f policyFunc) Admit(person types.Person, groupID int, table *types.Table) bool {
	return f(person, groupID, table)
}

func admitAll(_ types.Person, _ int, _ *types.Table) bool { return true }

// capacity admits a person while the group holds fewer than limit people.
func capacity(limit int) policyFunc {
	return func(_ types.Person, groupID int, table *types.Table) bool {
		return table.Size(groupID) < limit
	}
}

func people(names ...string) []types.Person {
	out := make([]types.Person, len(names))
	for i, name := range names {
		out[i] = types.Person{Name: name, Province: "p"}
	}

	return out
}

func TestPlace(t *testing.T) {
	t.Run("places everyone when everything is admissible", func(t *testing.T) {
		table := types.NewTable(3)

		ok := Place(people("a", "b", "c"), table, policyFunc(admitAll))

		require.True(t, ok)
		require.Equal(t, 3, table.Total())
	})

	t.Run("prefers the lowest admissible group id", func(t *testing.T) {
		table := types.NewTable(3)

		ok := Place(people("a", "b"), table, policyFunc(admitAll))

		require.True(t, ok)
		// With no constraints all people land in group 0.
		require.Equal(t, 2, table.Size(0))
		require.Equal(t, 0, table.Size(1))
	})

	t.Run("empty people list succeeds without touching the table", func(t *testing.T) {
		table := types.NewTable(2)

		ok := Place(nil, table, policyFunc(admitAll))

		require.True(t, ok)
		require.Equal(t, 0, table.Total())
	})

	t.Run("backtracks out of a dead end", func(t *testing.T) {
		// "a" fits anywhere, "b" only fits group 0, capacity 1 per group.
		// The greedy first placement (a into group 0) must be undone.
		table := types.NewTable(2)
		pool := people("a", "b")
		policy := policyFunc(func(p types.Person, groupID int, tbl *types.Table) bool {
			if tbl.Size(groupID) >= 1 {
				return false
			}

			return p.Name != "b" || groupID == 0
		})

		ok := Place(pool, table, policy)

		require.True(t, ok)
		require.Equal(t, []types.Person{pool[1]}, table.Persons(0))
		require.Equal(t, []types.Person{pool[0]}, table.Persons(1))
	})

	t.Run("restores the table exactly on failure", func(t *testing.T) {
		table := types.NewTable(2)
		seeded := types.Person{Name: "seeded", Province: "p"}
		table.Append(0, seeded)

		// Three people into two slots: capacity 1, group 0 already full.
		ok := Place(people("a", "b", "c"), table, capacity(1))

		require.False(t, ok)
		require.Equal(t, []types.Person{seeded}, table.Persons(0))
		require.Equal(t, 0, table.Size(1))
		require.Equal(t, 1, table.Total())
	})

	t.Run("fails when nothing admits a person", func(t *testing.T) {
		table := types.NewTable(2)

		ok := Place(people("a"), table, policyFunc(func(types.Person, int, *types.Table) bool {
			return false
		}))

		require.False(t, ok)
		require.Equal(t, 0, table.Total())
	})

	t.Run("exhausts a tight packing", func(t *testing.T) {
		// Six people into three groups of exactly two.
		table := types.NewTable(3)

		ok := Place(people("a", "b", "c", "d", "e", "f"), table, capacity(2))

		require.True(t, ok)
		for groupID := range 3 {
			require.Equal(t, 2, table.Size(groupID))
		}
	})
}

package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/g101418/ReviewGrouping/types"
)

func TestString(t *testing.T) {
	t.Run("one line per group, leader first", func(t *testing.T) {
		table := types.NewTable(2)
		table.Append(0, types.Person{Name: "alice", Province: "north", Role: types.RoleLeader})
		table.Append(0, types.Person{Name: "bob", Province: "south", External: true})
		table.Append(0, types.Person{Name: "carol", Province: "east"})
		table.Append(1, types.Person{Name: "dave", Province: "west", Role: types.RoleLeader})
		table.Append(1, types.Person{Name: "erin", Province: "central", External: true})

		want := "Group 1: leader: alice; members: bob (external), carol\n" +
			"Group 2: leader: dave; members: erin (external)\n"
		require.Equal(t, want, String(table))
	})

	t.Run("leader-only group has no member list", func(t *testing.T) {
		table := types.NewTable(1)
		table.Append(0, types.Person{Name: "alice", Province: "north", Role: types.RoleLeader})

		require.Equal(t, "Group 1: leader: alice\n", String(table))
	})

	t.Run("empty group is marked", func(t *testing.T) {
		require.Equal(t, "Group 1: (empty)\n", String(types.NewTable(1)))
	})
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_AppendPop(t *testing.T) {
	t.Run("pop is the exact inverse of append", func(t *testing.T) {
		table := NewTable(2)
		alice := Person{Name: "alice", Province: "north"}
		bob := Person{Name: "bob", Province: "south", External: true}

		table.Append(0, alice)
		table.Append(0, bob)
		require.Equal(t, 2, table.Size(0))

		popped := table.Pop(0)
		require.Equal(t, bob, popped)
		require.Equal(t, 1, table.Size(0))
		require.Equal(t, []Person{alice}, table.Persons(0))
	})

	t.Run("groups are independent", func(t *testing.T) {
		table := NewTable(3)
		table.Append(1, Person{Name: "x", Province: "p"})

		require.Equal(t, 0, table.Size(0))
		require.Equal(t, 1, table.Size(1))
		require.Equal(t, 0, table.Size(2))
		require.Equal(t, 1, table.Total())
	})
}

func TestTable_ExternalCount(t *testing.T) {
	table := NewTable(1)
	table.Append(0, Person{Name: "a", Province: "p"})
	table.Append(0, Person{Name: "b", Province: "p", External: true})
	table.Append(0, Person{Name: "c", Province: "p", External: true})

	require.Equal(t, 2, table.ExternalCount(0))

	table.Pop(0)
	require.Equal(t, 1, table.ExternalCount(0))
}

func TestTable_Leader(t *testing.T) {
	t.Run("empty group has no leader", func(t *testing.T) {
		table := NewTable(1)

		_, ok := table.Leader(0)
		require.False(t, ok)
	})

	t.Run("first occupant is the leader", func(t *testing.T) {
		table := NewTable(1)
		head := Person{Name: "head", Province: "p", Role: RoleLeader}
		table.Append(0, head)
		table.Append(0, Person{Name: "m", Province: "p"})

		leader, ok := table.Leader(0)
		require.True(t, ok)
		require.Equal(t, head, leader)
	})
}

func TestTable_Clone(t *testing.T) {
	table := NewTable(2)
	table.Append(0, Person{Name: "a", Province: "p"})

	clone := table.Clone()
	table.Append(0, Person{Name: "b", Province: "p"})
	table.Append(1, Person{Name: "c", Province: "p"})

	require.Equal(t, 1, clone.Size(0))
	require.Equal(t, 0, clone.Size(1))
	require.Equal(t, 3, table.Total())
	require.Equal(t, 1, clone.Total())
}

func TestTable_PersonsReturnsCopy(t *testing.T) {
	table := NewTable(1)
	table.Append(0, Person{Name: "a", Province: "p"})

	persons := table.Persons(0)
	persons[0].Name = "mutated"

	require.Equal(t, "a", table.Persons(0)[0].Name)
}

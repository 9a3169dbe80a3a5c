package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRoster() Roster {
	leaders := []Person{
		{Name: "L1", Province: "north"},
		{Name: "L2", Province: "south", External: true},
	}
	members := []Person{
		{Name: "A", Province: "east", External: true},
		{Name: "B", Province: "west"},
		{Name: "C", Province: "north"},
	}

	return NewRoster(leaders, members, [][]string{{"south"}, nil})
}

func TestNewRoster(t *testing.T) {
	roster := testRoster()

	t.Run("stamps roles", func(t *testing.T) {
		for _, p := range roster.Leaders {
			require.Equal(t, RoleLeader, p.Role)
		}
		for _, p := range roster.Members {
			require.Equal(t, RoleMember, p.Role)
		}
	})

	t.Run("stamps group IDs", func(t *testing.T) {
		for i, g := range roster.Groups {
			require.Equal(t, i, g.ID)
		}
	})
}

func TestRoster_Counts(t *testing.T) {
	roster := testRoster()

	require.Equal(t, 2, roster.M())
	require.Equal(t, 3, roster.N())
	require.Equal(t, 5, roster.Total())
	// One external leader plus one external member.
	require.Equal(t, 2, roster.ExternalCount())
}

func TestRoster_MemberSplit(t *testing.T) {
	roster := testRoster()

	externals := roster.ExternalMembers()
	general := roster.GeneralMembers()

	require.Len(t, externals, 1)
	require.Equal(t, "A", externals[0].Name)
	require.Len(t, general, 2)
	require.Equal(t, "B", general[0].Name)
	require.Equal(t, "C", general[1].Name)
}

func TestRoster_Validate(t *testing.T) {
	t.Run("valid roster passes", func(t *testing.T) {
		roster := testRoster()
		require.NoError(t, roster.Validate())
	})

	t.Run("rejects zero groups", func(t *testing.T) {
		roster := NewRoster(nil, nil, nil)

		err := roster.Validate()
		require.ErrorIs(t, err, ErrInvalidRoster)
	})

	t.Run("rejects leader and group count mismatch", func(t *testing.T) {
		roster := NewRoster(
			[]Person{{Name: "L1", Province: "north"}},
			nil,
			[][]string{nil, nil},
		)

		err := roster.Validate()
		require.ErrorIs(t, err, ErrInvalidRoster)
		require.Contains(t, err.Error(), "one leader per group")
	})

	t.Run("rejects out-of-order group IDs", func(t *testing.T) {
		roster := testRoster()
		roster.Groups[1].ID = 7

		err := roster.Validate()
		require.ErrorIs(t, err, ErrInvalidRoster)
	})

	t.Run("rejects incomplete person records", func(t *testing.T) {
		roster := testRoster()
		roster.Members[0].Province = ""

		err := roster.Validate()
		require.ErrorIs(t, err, ErrInvalidRoster)
	})
}

func TestGroup_Excludes(t *testing.T) {
	g := Group{ID: 0, ExcludedProvinces: []string{"north", "south"}}

	require.True(t, g.Excludes("north"))
	require.False(t, g.Excludes("east"))
	require.False(t, Group{}.Excludes("north"))
}

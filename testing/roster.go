package testing

import (
	"fmt"

	"github.com/g101418/ReviewGrouping/types"
)

// provinces is the palette fixture rosters cycle through.
var provinces = []string{"north", "south", "east", "west", "central"}

// FeasibleRoster builds a roster with m groups and n members that is always
// solvable: no province exclusions, and exactly m of the members flagged
// external so every group can receive its one required specialist.
//
// Parameters:
//   - m: Number of groups and leaders (>= 1)
//   - n: Number of members (>= m, so each group can get an external)
//
// Returns:
//   - types.Roster: The generated roster
func FeasibleRoster(m, n int) types.Roster {
	leaders := make([]types.Person, m)
	for i := range leaders {
		leaders[i] = types.Person{
			Name:     fmt.Sprintf("leader-%d", i),
			Province: provinces[i%len(provinces)],
		}
	}

	members := make([]types.Person, n)
	for i := range members {
		members[i] = types.Person{
			Name:     fmt.Sprintf("member-%d", i),
			Province: provinces[i%len(provinces)],
			External: i < m,
		}
	}

	return types.NewRoster(leaders, members, make([][]string, m))
}

// SpecimenRoster builds the small worked scenario used across the test
// suite: two groups with crossed province exclusions, two external members,
// expected bounds Lower=2, Upper=3, ExternalUpper=1.
//
// Returns:
//   - types.Roster: The specimen roster
func SpecimenRoster() types.Roster {
	leaders := []types.Person{
		{Name: "L1", Province: "ProvinceA"},
		{Name: "L2", Province: "ProvinceB"},
	}
	members := []types.Person{
		{Name: "A", Province: "ProvinceA", External: true},
		{Name: "B", Province: "ProvinceC", External: true},
		{Name: "C", Province: "ProvinceB"},
	}
	exclusions := [][]string{
		{"ProvinceB"},
		{"ProvinceA"},
	}

	return types.NewRoster(leaders, members, exclusions)
}

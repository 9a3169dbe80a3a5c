package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/g101418/ReviewGrouping/types"
)

// YAML implements a roster source for YAML roster documents.
//
// Document shape:
//
//	leaders:
//	  - {name: alice, province: north, external: false}
//	members:
//	  - {name: bob, province: south, external: true}
//	groups:
//	  - excluded: [south]
//	  - excluded: []
//
// Unlike the line-based format, YAML can express empty exclusion lists
// directly.
type YAML struct {
	input []byte
}

var _ types.RosterSource = (*YAML)(nil)

// yamlDoc is the on-disk document shape.
type yamlDoc struct {
	Leaders []types.Person `yaml:"leaders"`
	Members []types.Person `yaml:"members"`
	Groups  []struct {
		Excluded []string `yaml:"excluded"`
	} `yaml:"groups"`
}

// NewYAML creates a roster source parsing the given YAML document.
//
// Parameters:
//   - input: Raw YAML document bytes
//
// Returns:
//   - *YAML: Initialized source
//
// Example:
//
//	data, _ := os.ReadFile("roster.yaml")
//	src := source.NewYAML(data)
//	roster, err := src.LoadRoster()
func NewYAML(input []byte) *YAML {
	return &YAML{input: input}
}

// LoadRoster parses the YAML document into a roster.
//
// Returns:
//   - types.Roster: The parsed roster
//   - error: Wrapping types.ErrMalformedInput on any parse failure
func (y *YAML) LoadRoster() (types.Roster, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(y.input, &doc); err != nil {
		return types.Roster{}, fmt.Errorf("%w: %w", types.ErrMalformedInput, err)
	}

	exclusions := make([][]string, len(doc.Groups))
	for i, g := range doc.Groups {
		exclusions[i] = g.Excluded
	}

	roster := types.NewRoster(doc.Leaders, doc.Members, exclusions)
	if err := roster.Validate(); err != nil {
		return types.Roster{}, fmt.Errorf("%w: %w", types.ErrMalformedInput, err)
	}

	return roster, nil
}

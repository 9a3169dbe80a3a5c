package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/g101418/ReviewGrouping/types"
)

// DefaultMarker is the token that flags a person line as an external
// specialist when no custom marker is configured.
const DefaultMarker = "external"

// Text implements a roster source for the line-based roster format.
//
// The format, after dropping blank lines:
//
//	line 1:          M (number of groups and leaders)
//	line 2:          N (number of general members)
//	next M lines:    leader records:  name province [marker]
//	next N lines:    member records:  name province [marker]
//	next M lines:    per-group excluded provinces, space separated
//	                 (a single "-" denotes an empty exclusion list)
//
// A trailing marker token on a person line flags an external specialist.
type Text struct {
	input string

	// Marker is the external-specialist token. Defaults to DefaultMarker.
	Marker string
}

var _ types.RosterSource = (*Text)(nil)

// NewText creates a roster source parsing the given input text.
//
// Parameters:
//   - input: Full roster text in the line-based format
//
// Returns:
//   - *Text: Initialized source with the default external marker
//
// Example:
//
//	src := source.NewText(string(data))
//	roster, err := src.LoadRoster()
func NewText(input string) *Text {
	return &Text{input: input, Marker: DefaultMarker}
}

// LoadRoster parses the input text into a roster.
//
// The source owns input validation: line counts must match the declared M
// and N exactly, person lines must carry two or three fields, and a third
// field must equal the marker token.
//
// Returns:
//   - types.Roster: The parsed roster
//   - error: Wrapping types.ErrMalformedInput on any parse failure
func (t *Text) LoadRoster() (types.Roster, error) {
	var roster types.Roster

	var lines []string
	for _, line := range strings.Split(t.input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return roster, fmt.Errorf("%w: need at least the M and N count lines", types.ErrMalformedInput)
	}

	m, err := strconv.Atoi(lines[0])
	if err != nil {
		return roster, fmt.Errorf("%w: group count %q is not an integer", types.ErrMalformedInput, lines[0])
	}
	n, err := strconv.Atoi(lines[1])
	if err != nil {
		return roster, fmt.Errorf("%w: member count %q is not an integer", types.ErrMalformedInput, lines[1])
	}
	if m < 1 || n < 0 {
		return roster, fmt.Errorf("%w: counts M=%d N=%d out of range", types.ErrMalformedInput, m, n)
	}

	body := lines[2:]
	want := m + n + m
	if len(body) != want {
		return roster, fmt.Errorf("%w: expected %d record lines for M=%d N=%d, got %d",
			types.ErrMalformedInput, want, m, n, len(body))
	}

	leaders := make([]types.Person, 0, m)
	for _, line := range body[:m] {
		p, err := t.parsePerson(line)
		if err != nil {
			return roster, err
		}
		leaders = append(leaders, p)
	}

	members := make([]types.Person, 0, n)
	for _, line := range body[m : m+n] {
		p, err := t.parsePerson(line)
		if err != nil {
			return roster, err
		}
		members = append(members, p)
	}

	exclusions := make([][]string, 0, m)
	for _, line := range body[m+n:] {
		if line == "-" {
			exclusions = append(exclusions, nil)
			continue
		}
		exclusions = append(exclusions, strings.Fields(line))
	}

	roster = types.NewRoster(leaders, members, exclusions)
	if err := roster.Validate(); err != nil {
		return types.Roster{}, fmt.Errorf("%w: %w", types.ErrMalformedInput, err)
	}

	return roster, nil
}

// parsePerson parses one "name province [marker]" record line.
func (t *Text) parsePerson(line string) (types.Person, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 2:
		return types.Person{Name: fields[0], Province: fields[1]}, nil
	case 3:
		if fields[2] != t.marker() {
			return types.Person{}, fmt.Errorf("%w: person record %q has unknown trailing token %q (marker is %q)",
				types.ErrMalformedInput, line, fields[2], t.marker())
		}

		return types.Person{Name: fields[0], Province: fields[1], External: true}, nil
	default:
		return types.Person{}, fmt.Errorf("%w: person record %q has %d fields, want 2 or 3",
			types.ErrMalformedInput, line, len(fields))
	}
}

func (t *Text) marker() string {
	if t.Marker == "" {
		return DefaultMarker
	}

	return t.Marker
}

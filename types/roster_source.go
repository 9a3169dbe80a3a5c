package types

// RosterSource loads a roster from some backing representation.
//
// Sources own input validation: field counts, marker tokens and
// count consistency between the declared M/N and the actual records.
// The solver assumes a source-produced roster is well-formed apart from
// the structural checks Roster.Validate repeats.
type RosterSource interface {
	// LoadRoster parses the backing input into a roster.
	//
	// Returns:
	//   - Roster: The parsed roster
	//   - error: Wrapping ErrMalformedInput on any parse failure
	LoadRoster() (Roster, error)
}

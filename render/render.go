// Package render formats completed assignment tables for human consumption.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/g101418/ReviewGrouping/types"
)

// Fprint writes a human-readable listing of the table to w: one line per
// group, leader first, external specialists tagged.
//
// Example output:
//
//	Group 1: leader: alice; members: bob (external), carol
//	Group 2: leader: dave (external); members: erin
//
// Parameters:
//   - w: Destination writer
//   - table: Completed assignment table
//
// Returns:
//   - error: Write error, nil on success
func Fprint(w io.Writer, table *types.Table) error {
	for groupID := range table.NumGroups() {
		persons := table.Persons(groupID)

		var b strings.Builder
		fmt.Fprintf(&b, "Group %d: ", groupID+1)

		if len(persons) == 0 {
			b.WriteString("(empty)")
		} else {
			b.WriteString("leader: ")
			b.WriteString(tag(persons[0]))

			if len(persons) > 1 {
				b.WriteString("; members: ")
				names := make([]string, 0, len(persons)-1)
				for _, p := range persons[1:] {
					names = append(names, tag(p))
				}
				b.WriteString(strings.Join(names, ", "))
			}
		}

		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}

// String returns the listing Fprint would write.
func String(table *types.Table) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = Fprint(&b, table)

	return b.String()
}

// tag appends the external marker to a person's name when applicable.
func tag(p types.Person) string {
	if p.External {
		return p.Name + " (external)"
	}

	return p.Name
}

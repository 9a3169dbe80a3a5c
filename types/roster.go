package types

import "fmt"

// Roster is the validated input to a solve: the leaders, the general member
// pool, and the group definitions with their province exclusions.
//
// A Roster is immutable once built. The solver shuffles copies of the leader
// and member lists per run and never mutates the roster itself, so one
// Roster can back any number of solve attempts.
type Roster struct {
	// Leaders holds exactly one leader per group.
	Leaders []Person `json:"leaders" yaml:"leaders"`

	// Members holds the general reviewer pool, external specialists included.
	Members []Person `json:"members" yaml:"members"`

	// Groups holds the M group definitions. Groups[i].ID must equal i.
	Groups []Group `json:"groups" yaml:"groups"`
}

// NewRoster builds a roster from leader and member records, stamping roles
// and group IDs.
//
// Parameters:
//   - leaders: One leader record per group
//   - members: General member records
//   - exclusions: Per-group excluded-province lists, one per group
//
// Returns:
//   - Roster: Assembled roster (call Validate before solving)
func NewRoster(leaders, members []Person, exclusions [][]string) Roster {
	r := Roster{
		Leaders: make([]Person, len(leaders)),
		Members: make([]Person, len(members)),
		Groups:  make([]Group, len(exclusions)),
	}

	for i, p := range leaders {
		p.Role = RoleLeader
		r.Leaders[i] = p
	}
	for i, p := range members {
		p.Role = RoleMember
		r.Members[i] = p
	}
	for i, provinces := range exclusions {
		r.Groups[i] = Group{ID: i, ExcludedProvinces: provinces}
	}

	return r
}

// M returns the number of groups (and leaders).
func (r *Roster) M() int {
	return len(r.Groups)
}

// N returns the number of general members.
func (r *Roster) N() int {
	return len(r.Members)
}

// Total returns the full population size M+N.
func (r *Roster) Total() int {
	return len(r.Leaders) + len(r.Members)
}

// ExternalCount returns the total number of external specialists across
// leaders and members.
func (r *Roster) ExternalCount() int {
	count := 0
	for _, p := range r.Leaders {
		if p.External {
			count++
		}
	}
	for _, p := range r.Members {
		if p.External {
			count++
		}
	}

	return count
}

// ExternalMembers returns the members flagged external, in roster order.
func (r *Roster) ExternalMembers() []Person {
	var out []Person
	for _, p := range r.Members {
		if p.External {
			out = append(out, p)
		}
	}

	return out
}

// GeneralMembers returns the members not flagged external, in roster order.
func (r *Roster) GeneralMembers() []Person {
	var out []Person
	for _, p := range r.Members {
		if !p.External {
			out = append(out, p)
		}
	}

	return out
}

// Validate checks structural consistency of the roster.
//
// Rules:
//   - At least one group
//   - Exactly one leader per group
//   - Group IDs must match their position
//   - Every person must carry a name and a province
//
// Returns:
//   - error: Wrapping ErrInvalidRoster with a specific diagnostic, nil if valid
func (r *Roster) Validate() error {
	if len(r.Groups) < 1 {
		return fmt.Errorf("%w: at least one group is required", ErrInvalidRoster)
	}

	if len(r.Leaders) != len(r.Groups) {
		return fmt.Errorf("%w: %d leaders for %d groups, need exactly one leader per group",
			ErrInvalidRoster, len(r.Leaders), len(r.Groups))
	}

	for i, g := range r.Groups {
		if g.ID != i {
			return fmt.Errorf("%w: group at position %d has ID %d", ErrInvalidRoster, i, g.ID)
		}
	}

	for _, p := range r.Leaders {
		if p.Name == "" || p.Province == "" {
			return fmt.Errorf("%w: leader record %q missing name or province", ErrInvalidRoster, p.Name)
		}
	}
	for _, p := range r.Members {
		if p.Name == "" || p.Province == "" {
			return fmt.Errorf("%w: member record %q missing name or province", ErrInvalidRoster, p.Name)
		}
	}

	return nil
}

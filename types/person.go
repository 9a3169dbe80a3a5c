package types

// Role identifies a person's function within the review pool.
type Role int

const (
	// RoleLeader marks a group leader. Exactly one leader heads each group
	// and always occupies the first slot of the group's member sequence.
	RoleLeader Role = iota

	// RoleMember marks a general reviewer assigned after the leaders.
	RoleMember
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleLeader:
		return "leader"
	case RoleMember:
		return "member"
	default:
		return "unknown"
	}
}

// Person represents one participant in the review pool.
//
// A Person is an immutable record: it is created once by a RosterSource and
// consumed read-only by the solver. External specialists are subject to the
// per-group external quota and the one-per-group minimum enforced by the
// validator.
type Person struct {
	// Name uniquely identifies the person within a roster.
	Name string `json:"name" yaml:"name"`

	// Province is the person's home province, matched against each group's
	// excluded-provinces list.
	Province string `json:"province" yaml:"province"`

	// External marks the person as an external specialist.
	External bool `json:"external" yaml:"external"`

	// Role distinguishes group leaders from general members.
	Role Role `json:"role" yaml:"-"`
}

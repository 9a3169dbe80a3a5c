package types

// Phase identifies one placement phase of the solve pipeline.
//
// The solver runs the phases strictly in declaration order over one shared
// table: leaders first, then external specialists, then general members.
type Phase int

const (
	// PhaseLeaders places one leader into each group.
	PhaseLeaders Phase = iota

	// PhaseExternals places the external specialist members under the
	// external quota constraints.
	PhaseExternals

	// PhaseGeneral places the remaining general members up to capacity.
	PhaseGeneral
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLeaders:
		return "leaders"
	case PhaseExternals:
		return "externals"
	case PhaseGeneral:
		return "general"
	default:
		return "unknown"
	}
}

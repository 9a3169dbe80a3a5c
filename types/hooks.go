package types

// Hooks defines optional callbacks for solve lifecycle events.
//
// All hooks are optional. They are invoked synchronously on the solving
// goroutine, so they should complete quickly. Hook errors are logged by the
// solver but never fail the solve.
//
// Example:
//
//	hooks := &types.Hooks{
//	    OnPhaseCompleted: func(phase types.Phase, placed int) error {
//	        log.Printf("phase %s placed %d people", phase, placed)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnPhaseCompleted is called after each placement phase succeeds.
	// placed is the number of people the phase appended to the table.
	OnPhaseCompleted func(phase Phase, placed int) error

	// OnSolved is called once the validator has accepted the finished table.
	OnSolved func(seed int64, table *Table) error
}

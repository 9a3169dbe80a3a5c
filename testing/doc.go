// Package testing provides test utilities for the ReviewGrouping library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: types.Logger writing to testing.T
//   - FeasibleRoster: A roster with a known valid assignment
//   - SpecimenRoster: The small worked scenario used across the test suite
//
// Example usage:
//
//	import (
//	    "testing"
//	    grouptest "github.com/g101418/ReviewGrouping/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    roster := grouptest.FeasibleRoster(3, 9)
//	    // ...
//	}
package testing

package types

// Limits holds the per-run capacity and quota bounds derived from the
// population counts. All values are computed once per solve by ComputeLimits
// and read-only afterwards.
type Limits struct {
	// Lower is the minimum people per group: floor((M+N)/M).
	Lower int

	// Upper is the maximum people per group: ceil((M+N)/M).
	Upper int

	// ExternalUpper is the maximum external specialists per group: ceil(E/M).
	ExternalUpper int

	// TouchQuotaSize is the maximum number of groups allowed to reach Upper.
	TouchQuotaSize int

	// TouchQuotaExternal is the maximum number of groups allowed to reach
	// ExternalUpper.
	TouchQuotaExternal int
}

// ComputeLimits derives the capacity and quota bounds for a population of
// M groups, N general members and E external specialists (counted across
// leaders and members).
//
// The touch quotas come from the division remainders. A zero remainder is
// remapped to M: when the population divides evenly, Upper equals Lower and
// every group legitimately sits at the shared bound, so the quota must admit
// all M groups rather than none. The same remapping applies independently to
// the size quota and the external quota.
//
// Parameters:
//   - m: Number of groups and leaders (>= 1)
//   - n: Number of general members (>= 0)
//   - e: Total external specialists across leaders and members (>= 0)
//
// Returns:
//   - Limits: The derived bounds (pure function, deterministic)
func ComputeLimits(m, n, e int) Limits {
	total := m + n

	limits := Limits{
		Lower:         total / m,
		Upper:         (total + m - 1) / m,
		ExternalUpper: (e + m - 1) / m,
	}

	limits.TouchQuotaSize = total % m
	if limits.TouchQuotaSize == 0 {
		limits.TouchQuotaSize = m
	}

	limits.TouchQuotaExternal = e % m
	if limits.TouchQuotaExternal == 0 {
		limits.TouchQuotaExternal = m
	}

	return limits
}

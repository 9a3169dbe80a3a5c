// Package types contains the core data model and interfaces shared by all
// ReviewGrouping packages.
//
// Placing the model and the pluggable interfaces (PlacementPolicy, Logger,
// MetricsCollector, RosterSource) in a leaf package lets internal packages
// depend on them without importing the root grouping package, avoiding
// import cycles. The root package re-exports the common names via type
// aliases for convenience.
package types

// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - DispatchMatcher: a domain service selecting the dispatch channels a new
//     order should be announced in, based on the configured route index
package services

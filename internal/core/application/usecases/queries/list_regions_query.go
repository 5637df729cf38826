// Package queries contains read-only operations against the dispatch store.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return plain response models, bypassing the domain
// aggregates.
package queries

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrListRegionsQueryIsNotConstructed = errors.New(
	"ListRegionsQuery must be created via NewListRegionsQuery constructor",
)

// ListRegionsQuery retrieves every registered region, sorted by name.
type ListRegionsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRegionsQuery creates a query to list regions.
func NewListRegionsQuery() ListRegionsQuery {
	return ListRegionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRegionsQuery) Validate() error {
	return q.guard.Validate(ErrListRegionsQueryIsNotConstructed)
}

// RegionResponse represents one region row.
type RegionResponse struct {
	ID   kernel.UUID
	Name string
}

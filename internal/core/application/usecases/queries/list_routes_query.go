package queries

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrListRoutesQueryIsNotConstructed = errors.New(
	"ListRoutesQuery must be created via NewListRoutesQuery constructor",
)

// ListRoutesQuery retrieves every configured route with its attached channels.
type ListRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewListRoutesQuery creates a query to list routes.
func NewListRoutesQuery() ListRoutesQuery {
	return ListRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListRoutesQueryIsNotConstructed)
}

// ChannelResponse represents one channel attached to a route.
type ChannelResponse struct {
	ID   string
	Name string
}

// RouteResponse represents one route row with its channels.
// District fields are nil for region-wide endpoints.
type RouteResponse struct {
	ID             kernel.UUID
	FromRegionID   kernel.UUID
	FromDistrictID *kernel.UUID
	ToRegionID     kernel.UUID
	ToDistrictID   *kernel.UUID
	Channels       []ChannelResponse
}

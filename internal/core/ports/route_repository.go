package ports

import (
	"context"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates and
// their attached dispatch channels.
type RouteRepository interface {
	// Add persists a new route aggregate.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate, including its
	// channel attachments.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAll retrieves every configured route with its channels.
	// The dispatch matcher runs over this full set.
	GetAll(ctx context.Context) ([]*route.Route, error)

	// Delete removes a single route and its channel attachments.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByRegion removes every route referencing the region as origin or
	// destination. Used by the region delete cascade.
	DeleteByRegion(ctx context.Context, regionID kernel.UUID) error

	// DeleteByDistrict removes every route referencing the district as origin
	// or destination. Used by the district delete cascade.
	DeleteByDistrict(ctx context.Context, districtID kernel.UUID) error
}

package ports

import (
	"context"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPendingStatus retrieves every order currently awaiting a driver.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllAcceptedBy retrieves every order currently held by the driver.
	GetAllAcceptedBy(ctx context.Context, driverID string) ([]*order.Order, error)
}

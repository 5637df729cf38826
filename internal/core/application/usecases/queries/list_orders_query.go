package queries

import (
	"errors"
	"time"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally narrowed by lifecycle status
// and/or the driver currently holding them.
//
// Example:
//
//	query, _ := NewListOrdersQuery(WithStatus(order.Pending))
//	pending, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
type ListOrdersQuery struct {
	status     *order.Status
	acceptedBy string

	guard guard.ConstructorGuard
}

// ListOrdersOption narrows a ListOrdersQuery.
type ListOrdersOption func(*ListOrdersQuery) error

// WithStatus narrows the listing to one lifecycle status.
func WithStatus(status order.Status) ListOrdersOption {
	return func(q *ListOrdersQuery) error {
		if err := status.Validate(); err != nil {
			return err
		}
		q.status = &status
		return nil
	}
}

// WithAcceptedBy narrows the listing to orders held by the given driver.
func WithAcceptedBy(driverID string) ListOrdersOption {
	return func(q *ListOrdersQuery) error {
		q.acceptedBy = driverID
		return nil
	}
}

// NewListOrdersQuery creates a query to list orders.
func NewListOrdersQuery(opts ...ListOrdersOption) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	for _, opt := range opts {
		if err := opt(&query); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// AcceptedBy returns the optional holding-driver filter, empty when unset.
func (q ListOrdersQuery) AcceptedBy() string {
	return q.acceptedBy
}

// OrderResponse represents one order row.
type OrderResponse struct {
	ID               kernel.UUID
	RequesterID      string
	RequesterLabel   string
	FromRegionName   string
	FromDistrictName string
	ToRegionName     string
	ToDistrictName   string
	Phone            string
	Comment          string
	Status           order.Status
	CreatedAt        time.Time
	AcceptedBy       string
	AcceptedLabel    string
	AcceptedAt       *time.Time
}

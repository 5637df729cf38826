package queries

import (
	"errors"
	"time"

	"taxidispatch/internal/pkg/guard"
)

var (
	ErrListExpiringSubscriptionsQueryIsNotConstructed = errors.New(
		"ListExpiringSubscriptionsQuery must be created via NewListExpiringSubscriptionsQuery constructor",
	)
	ErrWindowIsInvalid = errors.New("window must be positive")
)

// ListExpiringSubscriptionsQuery finds driver accounts whose subscription
// runs out within the given window from now.
type ListExpiringSubscriptionsQuery struct { //nolint:recvcheck //using for validation
	window time.Duration

	guard guard.ConstructorGuard
}

// NewListExpiringSubscriptionsQuery creates a query for subscriptions ending
// within window.
func NewListExpiringSubscriptionsQuery(window time.Duration) (ListExpiringSubscriptionsQuery, error) {
	query := ListExpiringSubscriptionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWindow(window); err != nil {
		return ListExpiringSubscriptionsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListExpiringSubscriptionsQuery) Validate() error {
	return q.guard.Validate(ErrListExpiringSubscriptionsQueryIsNotConstructed)
}

// Window returns how far ahead of now to look.
func (q ListExpiringSubscriptionsQuery) Window() time.Duration {
	return q.window
}

func (q *ListExpiringSubscriptionsQuery) setWindow(window time.Duration) error {
	if window <= 0 {
		return ErrWindowIsInvalid
	}

	q.window = window
	return nil
}

// ExpiringSubscriptionResponse represents one driver whose subscription is
// about to run out.
type ExpiringSubscriptionResponse struct {
	DriverID        string
	SubscriptionEnd time.Time
}

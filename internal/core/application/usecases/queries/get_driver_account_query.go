package queries

import (
	"errors"
	"time"

	"taxidispatch/internal/pkg/guard"
)

var (
	ErrGetDriverAccountQueryIsNotConstructed = errors.New(
		"GetDriverAccountQuery must be created via NewGetDriverAccountQuery constructor",
	)
	ErrDriverIDIsRequired = errors.New("driver id is required")
)

// GetDriverAccountQuery retrieves one driver's ledger state and allow-set
// membership.
type GetDriverAccountQuery struct { //nolint:recvcheck //using for validation
	driverID string

	guard guard.ConstructorGuard
}

// NewGetDriverAccountQuery creates a query for a driver's account.
func NewGetDriverAccountQuery(driverID string) (GetDriverAccountQuery, error) {
	query := GetDriverAccountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return GetDriverAccountQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverAccountQueryIsNotConstructed)
}

// DriverID returns the driver being looked up.
func (q GetDriverAccountQuery) DriverID() string {
	return q.driverID
}

func (q *GetDriverAccountQuery) setDriverID(driverID string) error {
	if driverID == "" {
		return ErrDriverIDIsRequired
	}

	q.driverID = driverID
	return nil
}

// DriverAccountResponse represents a driver's ledger state.
// A driver who never had an account reads as a zero balance with no
// subscription, mirroring lazy account creation on the write side.
type DriverAccountResponse struct {
	DriverID        string
	Balance         int
	SubscriptionEnd *time.Time
	Allowed         bool
}

package ports

import (
	"context"

	"taxidispatch/internal/core/domain/model/account"
)

// AccountRepository defines the persistence contract for driver accounts and
// the allow-set of drivers permitted to take orders.
//
// The allow-set is tracked separately from accounts: removing a driver from
// the allow-set keeps the account record, so the balance and subscription
// survive re-admission.
type AccountRepository interface {
	// Add persists a new driver account.
	Add(ctx context.Context, aggregate *account.DriverAccount) error

	// Update persists changes to an existing driver account.
	Update(ctx context.Context, aggregate *account.DriverAccount) error

	// Get retrieves a driver account by the driver's external identifier,
	// errs.ErrObjectNotFound when the driver never had one.
	Get(ctx context.Context, driverID string) (*account.DriverAccount, error)

	// AddDriver inserts the driver into the allow-set. Idempotent.
	AddDriver(ctx context.Context, driverID string) error

	// RemoveDriver removes the driver from the allow-set, leaving the account
	// record untouched.
	RemoveDriver(ctx context.Context, driverID string) error

	// IsDriverAllowed reports allow-set membership.
	IsDriverAllowed(ctx context.Context, driverID string) (bool, error)

	// GetAllowedDrivers retrieves the full allow-set.
	GetAllowedDrivers(ctx context.Context) ([]string, error)
}

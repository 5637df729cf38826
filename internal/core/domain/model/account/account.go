package account

import (
	"errors"
	"time"

	"taxidispatch/internal/pkg/errs"
)

var (
	// ErrDriverAccountIsNotConstructed is returned when a DriverAccount was not
	// created through the NewDriverAccount factory method.
	ErrDriverAccountIsNotConstructed = errors.New("DriverAccount must be created via NewDriverAccount constructor")

	// ErrInsufficientBalance is returned when a debit would require more funds
	// than the account holds.
	ErrInsufficientBalance = errors.New("driver balance is insufficient")

	// ErrNoActiveSubscription is returned when a balance operation requires an
	// unexpired subscription but the account has none.
	ErrNoActiveSubscription = errors.New("driver has no active subscription")
)

// DriverAccount is the aggregate root of a single driver's ledger entry.
//
// Accounts are created lazily the first time a driver is looked at, with a
// zero balance and no subscription. The allow-set (which drivers may work at
// all) is tracked separately; removing a driver from the allow-set keeps the
// account so the balance survives re-admission.
//
// Balances are whole units. Negative balances are permitted by the ledger
// itself: only the acceptance flow checks sufficiency, administrative
// adjustments may push the balance anywhere.
type DriverAccount struct {
	// driverID is the driver's external messaging-system identifier
	driverID string

	// balance is the current ledger balance in whole units
	balance int

	// subscriptionEnd is the instant the paid subscription lapses,
	// nil when the driver never had one
	subscriptionEnd *time.Time

	// isConstructed ensures the account was created via a constructor
	isConstructed bool
}

// NewDriverAccount creates a fresh account with zero balance and no
// subscription.
func NewDriverAccount(driverID string) (*DriverAccount, error) {
	if driverID == "" {
		return nil, errs.NewValueIsRequiredError("driverId")
	}

	return &DriverAccount{
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// RestoreDriverAccount reconstructs an account from persisted state.
func RestoreDriverAccount(driverID string, balance int, subscriptionEnd *time.Time) (*DriverAccount, error) {
	acc, err := NewDriverAccount(driverID)
	if err != nil {
		return nil, err
	}

	acc.balance = balance
	acc.subscriptionEnd = subscriptionEnd
	return acc, nil
}

// Validate ensures the DriverAccount instance was properly constructed.
func (a *DriverAccount) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrDriverAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by driver identifier.
func (a *DriverAccount) IsEqual(other *DriverAccount) bool {
	return other != nil && a.driverID == other.driverID
}

// DriverID returns the driver's external identifier.
func (a *DriverAccount) DriverID() string {
	return a.driverID
}

// Balance returns the current ledger balance.
func (a *DriverAccount) Balance() int {
	return a.balance
}

// SubscriptionEnd returns when the subscription lapses, nil when the driver
// never had one.
func (a *DriverAccount) SubscriptionEnd() *time.Time {
	return a.subscriptionEnd
}

// HasActiveSubscription reports whether the subscription covers the given
// instant.
func (a *DriverAccount) HasActiveSubscription(now time.Time) bool {
	return a.subscriptionEnd != nil && a.subscriptionEnd.After(now)
}

// AdjustBalance applies a signed administrative adjustment.
// Adjustments are unconditional: they may drive the balance negative.
func (a *DriverAccount) AdjustBalance(delta int) {
	a.balance += delta
}

// Debit withdraws amount from the balance, failing when funds are short.
// Used by order acceptance where sufficiency is a hard precondition.
func (a *DriverAccount) Debit(amount int) error {
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, int(^uint(0)>>1))
	}
	if a.balance < amount {
		return ErrInsufficientBalance
	}

	a.balance -= amount
	return nil
}

// Credit adds amount to the balance (order return or cancellation refund).
func (a *DriverAccount) Credit(amount int) error {
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, int(^uint(0)>>1))
	}

	a.balance += amount
	return nil
}

// ExtendSubscription lengthens the subscription by the given number of days.
//
// Extensions stack: when the current subscription has time left the new window
// is appended to its end, otherwise it starts from now. Buying 30 days twice
// in quick succession yields roughly 60 days of coverage.
func (a *DriverAccount) ExtendSubscription(days int, now time.Time) error {
	if days <= 0 {
		return errs.NewValueIsOutOfRangeError("days", days, 1, int(^uint(0)>>1))
	}

	start := now
	if a.subscriptionEnd != nil && a.subscriptionEnd.After(now) {
		start = *a.subscriptionEnd
	}

	end := start.Add(time.Duration(days) * 24 * time.Hour)
	a.subscriptionEnd = &end
	return nil
}

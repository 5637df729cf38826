package order

import (
	"fmt"

	"taxidispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Completed
//	   ▲            │
//	   └────────────┤ (driver return)
//	                ▼
//	            Cancelled  (admin only, also reachable from Pending)
//
// Completed and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order. Pending orders are
	// visible to dispatch channels and can be accepted by any eligible driver.
	Pending

	// Accepted indicates a driver has taken the order. Exactly one driver
	// holds an accepted order at a time.
	Accepted

	// Completed indicates the driver confirmed the ride was carried out.
	// This is a final state.
	Completed

	// Cancelled indicates an administrator withdrew the order.
	// This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Accepted, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire/storage name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateAccept checks if the status allows acceptance without performing
// the transition. Only Pending orders can be accepted; an order that lost the
// acceptance race is no longer Pending and fails here with no side effect.
func (s Status) ValidateAccept() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment.
//
// Business rules:
//   - Pending orders must not have an accepting driver
//   - Accepted and Completed orders must have an accepting driver
//   - Cancelled orders may have either (the driver is retained for audit
//     when an accepted order is cancelled administratively)
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && (s == Accepted || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Returns (0, error) if acceptance is not allowed from the current status.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return 0, err
	}

	return Accepted, nil
}

// Return transitions the status back to Pending (driver-initiated return).
//
// Valid transitions:
//   - Accepted -> Pending
func (s Status) Return() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to return", s.String()),
		)
	}

	return Pending, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Accepted -> Completed
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled (administrative withdrawal).
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

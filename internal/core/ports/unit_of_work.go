package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the whole
// dispatch document: geography, routes, orders and driver accounts.
//
// Units of work are strictly serialized process-wide: Begin blocks until no
// other unit of work is in flight, and the exclusion is held until Commit or
// Rollback. A logical mutation that spans aggregates (an acceptance's status
// flip plus balance debit) therefore either applies in full or not at all,
// and two concurrent acceptances of the same order cannot both observe it
// pending.
type UnitOfWork interface {
	// Begin acquires the process-wide mutation lock and starts a new database
	// transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and releases the lock.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and releases the lock.
	// Safe to defer after Begin: a no-op once Commit succeeded.
	Rollback(ctx context.Context) error

	// GeoRepository returns a GeoRepository bound to the current transaction.
	GeoRepository() GeoRepository

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// AccountRepository returns an AccountRepository bound to the current transaction.
	AccountRepository() AccountRepository
}

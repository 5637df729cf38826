// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"taxidispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches; the
// underlying unit of work still serializes all mutations process-wide.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// GeoRepoFactory provides access to the geography repository within a transaction.
	GeoRepoFactory interface {
		GeoRepository() ports.GeoRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountRepoFactory provides access to the driver account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// GeoUoW manages transactions for geography and route index maintenance.
	// Region and district deletion cascades into the route index, so both
	// repositories live behind one transaction boundary.
	GeoUoW interface {
		TxManager
		GeoRepoFactory
		RouteRepoFactory
	}

	// GeoUoWFactory creates new geography unit of work instances.
	GeoUoWFactory interface {
		Create() GeoUoW
	}

	// OrderUoW manages transactions for order creation: resolving the
	// geography snapshot, reading the route index for dispatch matching and
	// recording the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
		GeoRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions for order lifecycle transitions that
	// also move driver balances (accept, return, cancel, complete).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   accountRepo := uow.AccountRepository()
	//   // ... status flip and balance movement together
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// AccountUoW manages transactions for account-only operations: balance
	// adjustments, subscription extensions and allow-set maintenance.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)

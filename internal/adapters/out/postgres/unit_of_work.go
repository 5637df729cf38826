// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern over the dispatch store.
//
// Units of work are strictly serialized: the factory owns a process-wide mutex
// that Begin acquires and Commit/Rollback release, so at most one
// read-modify-write cycle touches the store at a time. Repository accessors
// hand out repositories bound to the in-flight transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"sync"

	"taxidispatch/internal/adapters/out/postgres/accountrepo"
	"taxidispatch/internal/adapters/out/postgres/georepo"
	"taxidispatch/internal/adapters/out/postgres/orderrepo"
	"taxidispatch/internal/adapters/out/postgres/routerepo"
	"taxidispatch/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates serialized UnitOfWork instances sharing one
// database connection and one process-wide mutation lock.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. All instances created by the same factory contend on the same
// lock.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork. Each business operation gets its own
// instance; the instance is not reusable after Commit or Rollback.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db: f.db,
		mu: &f.mu,
	}
}

// GormUnitOfWork coordinates one database transaction under the process-wide
// mutation lock. The lock is held from Begin until Commit or Rollback, which
// makes read-modify-write cycles across repositories atomic with respect to
// each other.
type GormUnitOfWork struct {
	db *gorm.DB
	mu *sync.Mutex
	tx *gorm.DB
}

// Begin acquires the mutation lock and starts a database transaction.
// Calling Begin again on an instance that already holds a transaction is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.mu.Lock()

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		uow.mu.Unlock()
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction and releases the mutation lock.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.mu.Unlock()
	return err
}

// Rollback discards the transaction and releases the mutation lock.
// Safe to defer: a no-op when no transaction is active (already committed or
// rolled back).
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.mu.Unlock()
	return err
}

// GeoRepository returns a geography repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) GeoRepository() ports.GeoRepository {
	return georepo.NewGormGeoRepository(uow.session())
}

// RouteRepository returns a route repository bound to the current transaction.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.session())
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.session())
}

// AccountRepository returns a driver account repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.session())
}

func (uow *GormUnitOfWork) session() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

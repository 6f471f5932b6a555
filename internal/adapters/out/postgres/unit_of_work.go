// Package postgres provides the GORM-based Unit of Work over the loads and
// bookings tables.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// Takes the row lock until Commit or Rollback
//	l, err := uow.LoadRepository().GetForUpdate(ctx, loadID)
//	if err != nil {
//	    return err
//	}
//
//	if err := uow.BookingRepository().Add(ctx, b); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin run on the plain connection and are
// what the query handlers use.
package postgres

import (
	"context"

	"loadboard/internal/adapters/out/postgres/bookingrepo"
	"loadboard/internal/adapters/out/postgres/loadrepo"
	"loadboard/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Instances must not be shared between
// goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active,
// which makes it safe to defer after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) LoadRepository() ports.LoadRepository {
	return loadrepo.NewGormLoadRepository(uow.conn())
}

func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

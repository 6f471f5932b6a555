package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// run inside the transaction; before Begin they use the plain connection.
type UnitOfWork interface {
	// Begin starts the transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit makes every change since Begin visible.
	Commit(ctx context.Context) error

	// Rollback discards every change since Begin. It returns an error when no
	// transaction is active, which callers deferring it may ignore.
	Rollback(ctx context.Context) error

	LoadRepository() LoadRepository
	BookingRepository() BookingRepository
}

// Package commands contains business operations that modify system state.
// Every command follows the same pattern: validation, per-load locking,
// transaction management, and persistence.
package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// LoadUoW manages transactions for load-only operations.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// UoW manages transactions across loads and bookings. Booking commands
	// always need it because they write load status.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   loads := uow.LoadRepository()
	//   bookings := uow.BookingRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LoadRepoFactory
		BookingRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Recorder receives the effects of handled commands. internal/metrics
// implements it.
type Recorder interface {
	CommandHandled(command string, err error)
	LoadStatusChanged(from, to string)
	BookingsAutoRejected(n int)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) CommandHandled(string, error) {}
func (NopRecorder) LoadStatusChanged(string, string) {}
func (NopRecorder) BookingsAutoRejected(int) {}

// Observability bundles the logger and recorder shared by all handlers.
type Observability struct {
	Logger   *slog.Logger
	Recorder Recorder
}

func (o Observability) logger(component string) *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}

func (o Observability) recorder() Recorder {
	if o.Recorder == nil {
		return NopRecorder{}
	}
	return o.Recorder
}

// withinUoW runs fn in a fresh transaction and commits it when fn succeeds.
func withinUoW[U TxManager](ctx context.Context, uow U, fn func(uow U) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

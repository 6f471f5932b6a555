package memory

import (
	"context"
	"errors"

	"loadboard/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes transactions on the whole store. Only one unit of work
// is open at a time; Begin blocks until the previous one ends.
type UnitOfWork struct {
	store *Store
	tx    *txState
}

type txState struct {
	state state
}

func (t *txState) read(fn func(s *state) error) error {
	return fn(&t.state)
}

func (t *txState) write(fn func(s *state) error) error {
	return fn(&t.state)
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}
	uow.store.mu.Lock()
	uow.tx = &txState{state: uow.store.state.clone()}
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	uow.store.state = uow.tx.state
	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) access() stateAccess {
	if uow.tx != nil {
		return uow.tx
	}
	return direct{store: uow.store}
}

func (uow *UnitOfWork) LoadRepository() ports.LoadRepository {
	return &LoadRepository{access: uow.access()}
}

func (uow *UnitOfWork) BookingRepository() ports.BookingRepository {
	return &BookingRepository{access: uow.access()}
}

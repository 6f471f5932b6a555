// Package memory provides a transactional in-memory store and an in-process
// load locker. It backs STORE_BACKEND=memory and the application tests.
//
// The store keeps plain records, never aggregates, so callers cannot mutate
// stored state through a pointer they got from a repository. A unit of work
// takes the store's write lock on Begin, works on a private copy of the state
// and swaps it in on Commit.
package memory

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type loadRecord struct {
	ID             uuid.UUID
	ShipperID      string
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
	ProductType    string
	TruckType      string
	NoOfTrucks     int
	Weight         decimal.Decimal
	Comment        string
	DatePosted     time.Time
	Status         int
}

type bookingRecord struct {
	ID            uuid.UUID
	LoadID        uuid.UUID
	TransporterID string
	ProposedRate  decimal.Decimal
	Comment       string
	Status        int
	RequestedAt   time.Time
}

type state struct {
	loads    map[uuid.UUID]loadRecord
	bookings map[uuid.UUID]bookingRecord
}

func newState() state {
	return state{
		loads:    map[uuid.UUID]loadRecord{},
		bookings: map[uuid.UUID]bookingRecord{},
	}
}

func (s state) clone() state {
	return state{
		loads:    maps.Clone(s.loads),
		bookings: maps.Clone(s.bookings),
	}
}

// Store is the shared in-memory database.
type Store struct {
	mu    sync.RWMutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// stateAccess runs reads and writes against either the committed state or the
// private state of an open unit of work.
type stateAccess interface {
	read(fn func(s *state) error) error
	write(fn func(s *state) error) error
}

// direct accesses the committed state, one statement at a time.
type direct struct {
	store *Store
}

func (d direct) read(fn func(s *state) error) error {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()
	return fn(&d.store.state)
}

func (d direct) write(fn func(s *state) error) error {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	return fn(&d.store.state)
}

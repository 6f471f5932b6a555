package memory

import (
	"context"
	"sync"

	"loadboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LoadLocker is an in-process ports.LoadLocker: one lock per load id, created
// on demand and dropped when nobody holds or waits for it.
type LoadLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyedLock
}

type keyedLock struct {
	sem  chan struct{}
	refs int
}

func NewLoadLocker() *LoadLocker {
	return &LoadLocker{locks: map[uuid.UUID]*keyedLock{}}
}

func (l *LoadLocker) WithLoadLock(ctx context.Context, loadID kernel.UUID, fn func(ctx context.Context) error) error {
	key := loadID.Raw()
	lock := l.acquireRef(key)
	defer l.releaseRef(key, lock)

	select {
	case lock.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-lock.sem }()

	return fn(ctx)
}

func (l *LoadLocker) acquireRef(key uuid.UUID) *keyedLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = &keyedLock{sem: make(chan struct{}, 1)}
		l.locks[key] = lock
	}
	lock.refs++
	return lock
}

func (l *LoadLocker) releaseRef(key uuid.UUID, lock *keyedLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, key)
	}
}

package ports

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
)

// LoadLocker serializes mutations that touch the same load. Operations on
// different loads never wait for each other.
type LoadLocker interface {
	// WithLoadLock runs fn while holding the lock for loadID and releases it
	// afterwards. It fails without calling fn when the lock cannot be taken
	// before ctx is done.
	WithLoadLock(ctx context.Context, loadID kernel.UUID, fn func(ctx context.Context) error) error
}

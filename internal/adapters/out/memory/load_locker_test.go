package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"loadboard/internal/adapters/out/memory"
	"loadboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocker_SerializesSameLoad(t *testing.T) {
	locker := memory.NewLoadLocker()
	loadID := kernel.NewUUID()

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locker.WithLoadLock(context.Background(), loadID, func(context.Context) error {
				n := inside.Add(1)
				for {
					m := maxInside.Load()
					if n <= m || maxInside.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Equal(t, 0, memory.HeldLocks(locker))
}

func TestLoadLocker_DifferentLoadsDoNotBlock(t *testing.T) {
	locker := memory.NewLoadLocker()
	first, second := kernel.NewUUID(), kernel.NewUUID()

	err := locker.WithLoadLock(t.Context(), first, func(ctx context.Context) error {
		return locker.WithLoadLock(ctx, second, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
}

func TestLoadLocker_HonoursContext(t *testing.T) {
	locker := memory.NewLoadLocker()
	loadID := kernel.NewUUID()

	err := locker.WithLoadLock(t.Context(), loadID, func(context.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		called := false
		err := locker.WithLoadLock(ctx, loadID, func(context.Context) error {
			called = true
			return nil
		})
		assert.False(t, called)
		return err
	})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, memory.HeldLocks(locker))
}

package lifecycle_test

import (
	"testing"

	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLifecycle_CreateIsPosted(t *testing.T) {
	h := newHarness(t)

	id := h.createLoad()

	assert.Equal(t, load.Posted, h.loadStatus(id))
}

func TestLoadLifecycle_CreateStampsPostingDate(t *testing.T) {
	h := newHarness(t)
	id := h.createLoad()

	l, err := h.factory.Create().LoadRepository().Get(t.Context(), id)

	require.NoError(t, err)
	assert.True(t, clock().Equal(l.DatePosted()))
}

func TestLoadLifecycle_SetStatus(t *testing.T) {
	h := newHarness(t)
	id := h.createLoad()

	t.Run("should overwrite without transition check", func(t *testing.T) {
		for _, next := range []load.Status{load.Cancelled, load.Posted, load.Booked} {
			var change lifecycle.StatusChange
			err := h.inTx(func(loads lifecycle.LoadLifecycle, _ lifecycle.BookingLifecycle) error {
				var err error
				change, err = loads.SetStatus(t.Context(), id, next)
				return err
			})

			require.NoError(t, err)
			assert.True(t, change.Changed())
			assert.Equal(t, next, change.To)
			assert.Equal(t, next, h.loadStatus(id))
		}
	})

	t.Run("should report no change for same status", func(t *testing.T) {
		var change lifecycle.StatusChange
		err := h.inTx(func(loads lifecycle.LoadLifecycle, _ lifecycle.BookingLifecycle) error {
			var err error
			change, err = loads.SetStatus(t.Context(), id, load.Booked)
			return err
		})

		require.NoError(t, err)
		assert.False(t, change.Changed())
	})

	t.Run("should fail for missing load", func(t *testing.T) {
		err := h.inTx(func(loads lifecycle.LoadLifecycle, _ lifecycle.BookingLifecycle) error {
			_, err := loads.SetStatus(t.Context(), kernel.NewUUID(), load.Posted)
			return err
		})

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestLoadLifecycle_Update(t *testing.T) {
	h := newHarness(t)
	id := h.createLoad()
	h.mustCreateBooking(id, "T1", 100)

	err := h.inTx(func(loads lifecycle.LoadLifecycle, _ lifecycle.BookingLifecycle) error {
		current, err := loads.Get(t.Context(), id)
		require.NoError(t, err)

		details := current.Details()
		details.TruckType = "Flatbed"
		_, err = loads.Update(t.Context(), id, details)
		return err
	})

	require.NoError(t, err)
	l, err := h.factory.Create().LoadRepository().Get(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "Flatbed", l.TruckType())
	assert.Equal(t, load.Booked, l.Status())
}

func TestLoadLifecycle_DeleteKeepsBookings(t *testing.T) {
	h := newHarness(t)
	id := h.createLoad()
	bookingID := h.mustCreateBooking(id, "T1", 100)

	err := h.inTx(func(loads lifecycle.LoadLifecycle, _ lifecycle.BookingLifecycle) error {
		return loads.Delete(t.Context(), id)
	})
	require.NoError(t, err)

	_, err = h.factory.Create().LoadRepository().Get(t.Context(), id)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	orphans, err := h.factory.Create().BookingRepository().ListOrphaned(t.Context())
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.True(t, orphans[0].ID().IsEqual(bookingID))

	err = h.inTx(func(loads lifecycle.LoadLifecycle, _ lifecycle.BookingLifecycle) error {
		return loads.Delete(t.Context(), id)
	})
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

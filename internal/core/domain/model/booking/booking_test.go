package booking_test

import (
	"testing"
	"time"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	requestedAt := time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC)

	t.Run("should create pending booking", func(t *testing.T) {
		id, loadID := kernel.NewUUID(), kernel.NewUUID()

		b, err := booking.NewBooking(id, loadID, " TRANS001 ", decimal.NewFromInt(25000), "2 days", requestedAt)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(id))
		assert.True(t, b.LoadID().IsEqual(loadID))
		assert.Equal(t, "TRANS001", b.TransporterID())
		assert.True(t, decimal.NewFromInt(25000).Equal(b.ProposedRate()))
		assert.Equal(t, "2 days", b.Comment())
		assert.Equal(t, booking.Pending, b.Status())
		assert.True(t, b.IsPending())
		assert.True(t, requestedAt.Equal(b.RequestedAt()))
	})

	t.Run("should reject non-positive rate", func(t *testing.T) {
		for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-0.01)} {
			b, err := booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), "T", rate, "", requestedAt)

			require.Error(t, err)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "proposedRate is invalid")
		}
	})

	t.Run("should report every missing field", func(t *testing.T) {
		b, err := booking.NewBooking(kernel.UUID{}, kernel.UUID{}, "", decimal.NewFromInt(1), "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, booking.ErrTransporterIDIsRequired)
		assert.Contains(t, err.Error(), "loadId")
		assert.Contains(t, err.Error(), "requestedAt")
	})
}

func TestRestoreBooking(t *testing.T) {
	b, err := booking.RestoreBooking(kernel.NewUUID(), kernel.NewUUID(), "T", decimal.NewFromInt(1), "",
		booking.Rejected, time.Now())

	require.NoError(t, err)
	assert.True(t, b.IsRejected())

	_, err = booking.RestoreBooking(kernel.NewUUID(), kernel.NewUUID(), "T", decimal.NewFromInt(1), "",
		booking.Unknown, time.Now())
	require.Error(t, err)
}

func TestBooking_Validate(t *testing.T) {
	var nilBooking *booking.Booking
	assert.Equal(t, booking.ErrBookingIsNotConstructed, nilBooking.Validate())
	assert.Equal(t, booking.ErrBookingIsNotConstructed, (&booking.Booking{}).Validate())
}

func TestBooking_Revise(t *testing.T) {
	b, _ := booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), "T1", decimal.NewFromInt(100), "first", time.Now())
	loadID := b.LoadID()

	t.Run("should replace bid fields", func(t *testing.T) {
		require.NoError(t, b.Revise("T2", decimal.RequireFromString("120.50"), "second"))

		assert.Equal(t, "T2", b.TransporterID())
		assert.Equal(t, "120.5", b.ProposedRate().String())
		assert.Equal(t, "second", b.Comment())
		assert.True(t, b.LoadID().IsEqual(loadID))
	})

	t.Run("should keep booking unchanged on error", func(t *testing.T) {
		require.Error(t, b.Revise("T3", decimal.Zero, "third"))

		assert.Equal(t, "T2", b.TransporterID())
		assert.Equal(t, "second", b.Comment())
	})
}

func TestBooking_ChangeStatus(t *testing.T) {
	b, _ := booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), "T", decimal.NewFromInt(1), "", time.Now())

	previous, err := b.ChangeStatus(booking.Accepted)
	require.NoError(t, err)
	assert.Equal(t, booking.Pending, previous)
	assert.Equal(t, booking.Accepted, b.Status())

	previous, err = b.ChangeStatus(booking.Pending)
	require.NoError(t, err)
	assert.Equal(t, booking.Accepted, previous)

	previous, err = b.ChangeStatus(booking.Unknown)
	require.Error(t, err)
	assert.Equal(t, booking.Pending, previous)
	assert.Equal(t, booking.Pending, b.Status())

	b.Reject()
	assert.True(t, b.IsRejected())
}

package memory_test

import (
	"testing"
	"time"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestLoad(t *testing.T, shipper, truck string, postedAt time.Time) *load.Load {
	t.Helper()

	facility, err := load.NewFacility("Mumbai Port", "Delhi Warehouse", baseTime.Add(24*time.Hour), baseTime.Add(72*time.Hour))
	require.NoError(t, err)

	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
		ShipperID:   shipper,
		Facility:    facility,
		ProductType: "Electronics",
		TruckType:   truck,
		NoOfTrucks:  2,
		Weight:      decimal.RequireFromString("15.5"),
	}, postedAt)
	require.NoError(t, err)
	return l
}

func newTestBooking(t *testing.T, loadID kernel.UUID, transporter string, rate int64, requestedAt time.Time) *booking.Booking {
	t.Helper()

	b, err := booking.NewBooking(kernel.NewUUID(), loadID, transporter, decimal.NewFromInt(rate), "", requestedAt)
	require.NoError(t, err)
	return b
}

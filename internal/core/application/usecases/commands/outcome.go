package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/domain/model/kernel"
)

// reportOutcome logs and records the cascades of a committed booking command.
func reportOutcome(ctx context.Context, logger *slog.Logger, recorder Recorder, outcome lifecycle.Outcome) {
	for _, change := range outcome.LoadStatus {
		recorder.LoadStatusChanged(change.From.String(), change.To.String())
		logger.InfoContext(ctx, "Load status changed",
			"load_id", change.LoadID.String(),
			"from", change.From.String(),
			"to", change.To.String(),
		)
	}

	if n := len(outcome.AutoRejected); n > 0 {
		recorder.BookingsAutoRejected(n)
		ids := make([]string, 0, n)
		for _, id := range outcome.AutoRejected {
			ids = append(ids, id.String())
		}
		logger.InfoContext(ctx, "Pending bookings rejected",
			"load_id", outcome.LoadID.String(),
			"booking_ids", ids,
		)
	}
}

// bookingLoadID reads the load a booking belongs to outside of any
// transaction. The reference never changes, so it is safe to take the load
// lock with it afterwards.
func bookingLoadID(ctx context.Context, factory UoWFactory, bookingID kernel.UUID) (kernel.UUID, error) {
	b, err := factory.Create().BookingRepository().Get(ctx, bookingID)
	if err != nil {
		return kernel.UUID{}, err
	}
	return b.LoadID(), nil
}

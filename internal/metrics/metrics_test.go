package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"loadboard/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"not found", errs.NewObjectNotFoundError("load", "42"), "not_found"},
		{"wrapped not found", fmt.Errorf("get: %w", errs.NewObjectNotFoundError("load", "42")), "not_found"},
		{"rule", errs.NewBusinessRuleViolationError("nope"), "rule_violation"},
		{"required", errs.NewValueIsRequiredError("shipperId"), "invalid"},
		{"invalid", errs.NewValueIsInvalidError("weight"), "invalid"},
		{"joined", errors.Join(errs.NewValueIsInvalidError("weight"), errors.New("other")), "invalid"},
		{"other", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.err))
		})
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.CommandHandled("create_booking", nil)
	m.CommandHandled("create_booking", nil)
	m.CommandHandled("create_booking", errs.NewBusinessRuleViolationError("duplicate"))
	m.LoadStatusChanged("POSTED", "BOOKED")
	m.BookingsAutoRejected(3)
	m.OrphanedBookingsObserved(4)
	m.ObserveHTTPRequest(http.MethodGet, "/load/:loadId", http.StatusOK, 10*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.commandsTotal.WithLabelValues("create_booking", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.commandsTotal.WithLabelValues("create_booking", "rule_violation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.loadStatusChanges.WithLabelValues("POSTED", "BOOKED")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.bookingsAutoRejected), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.orphanedBookings), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/load/:loadId", "200")), 0)
}

func TestMetrics_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New()

	require.NoError(t, m.Register(reg))
	require.Error(t, m.Register(reg))

	m.OrphanedBookingsObserved(1)
	count, err := testutil.GatherAndCount(reg, "loadboard_orphaned_bookings")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"loadboard/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "loadboard"

// Metrics groups every collector the service exports. Collectors are not
// registered globally; call Register with the registry served on /metrics.
type Metrics struct {
	commandsTotal        *prometheus.CounterVec
	loadStatusChanges    *prometheus.CounterVec
	bookingsAutoRejected prometheus.Counter
	orphanedBookings     prometheus.Gauge
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of handled commands by result",
			},
			[]string{"command", "result"},
		),
		loadStatusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "load_status_changes_total",
				Help:      "Total number of committed load status transitions",
			},
			[]string{"from", "to"},
		),
		bookingsAutoRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_auto_rejected_total",
			Help:      "Total number of pending bookings rejected because a sibling was accepted",
		}),
		orphanedBookings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orphaned_bookings",
			Help:      "Number of bookings whose load no longer exists, as of the last audit",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Register adds all collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.commandsTotal,
		m.loadStatusChanges,
		m.bookingsAutoRejected,
		m.orphanedBookings,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// CommandHandled counts one command execution, labelled by error kind.
func (m *Metrics) CommandHandled(command string, err error) {
	m.commandsTotal.WithLabelValues(command, Result(err)).Inc()
}

func (m *Metrics) LoadStatusChanged(from, to string) {
	m.loadStatusChanges.WithLabelValues(from, to).Inc()
}

func (m *Metrics) BookingsAutoRejected(n int) {
	m.bookingsAutoRejected.Add(float64(n))
}

func (m *Metrics) OrphanedBookingsObserved(n int) {
	m.orphanedBookings.Set(float64(n))
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, took time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(took.Seconds())
}

// Result maps an error to a low-cardinality label value.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		return "rule_violation"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return "invalid"
	default:
		return "error"
	}
}

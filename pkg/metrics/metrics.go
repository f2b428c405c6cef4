// Package metrics exposes Prometheus instrumentation for the operator
// console: scan outcomes, check-in latency and seat-map build sizes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_scan_outcomes_total",
			Help: "Check-in attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkInDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkin_duration_seconds",
			Help:    "Latency of lookup plus check-in per scan",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
	)

	debouncedScans = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkin_scans_debounced_total",
			Help: "Scans dropped because the code was seen within the debounce window",
		},
	)

	seatMapSeats = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seatmap_build_seats",
			Help:    "Number of seats per built seat map",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		},
		[]string{"mode"},
	)

	ticketCancellations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_cancellations_total",
			Help: "Ticket cancellations by refund tier",
		},
		[]string{"refund_percentage"},
	)
)

// RecordScanOutcome counts one check-in attempt result. Outcome values are
// the checkin package's outcome kinds.
func RecordScanOutcome(outcome string) {
	scanOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveCheckInDuration records the wall time of one scan's processing.
func ObserveCheckInDuration(d time.Duration) {
	checkInDuration.Observe(d.Seconds())
}

// RecordScanDebounced counts a scan suppressed by the debounce window.
func RecordScanDebounced() {
	debouncedScans.Inc()
}

// ObserveSeatMapSize records how many seats went into a built map.
// mode is "venue" or "event".
func ObserveSeatMapSize(mode string, seats int) {
	seatMapSeats.WithLabelValues(mode).Observe(float64(seats))
}

// RecordCancellation counts a cancellation by its refund tier.
func RecordCancellation(refundPercentage string) {
	ticketCancellations.WithLabelValues(refundPercentage).Inc()
}

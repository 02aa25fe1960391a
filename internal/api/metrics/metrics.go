// Package metrics defines and registers all custom Prometheus metrics for
// the consultancy API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init time via promauto; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "consultancy"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - service: the requested service category (e.g. "Career Counselling")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by service category.",
	},
	[]string{"service"},
)

// BookingStatusUpdatesTotal counts persisted booking status changes.
// Label:
//   - status: the new status ("confirmed", "rejected", "completed", ...)
var BookingStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_updates_total",
		Help:      "Total number of booking status updates, by new status.",
	},
	[]string{"status"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts successful email sends.
// Label:
//   - kind: "confirmed", "rejected", "booking_received", "password_reset", ...
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notification emails sent successfully.",
	},
	[]string{"kind"},
)

// NotificationsFailedTotal counts failed email sends.
// Label:
//   - kind: same values as NotificationsSentTotal
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification emails that failed to send.",
	},
	[]string{"kind"},
)

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadsCreatedTotal counts contact-form submissions.
// Label:
//   - service: the requested service category
var LeadsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads captured, by service category.",
	},
	[]string{"service"},
)

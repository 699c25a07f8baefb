// Package metrics defines and registers all custom Prometheus metrics for the
// Tool2u rental platform. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "toolrent"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" (wrong credentials), or "error" (storage fault)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success", "duplicate", "reserved", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationWebhooksTotal counts outbound registration notifications.
// Label:
//   - result: "delivered" or "failed"
var RegistrationWebhooksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_webhooks_total",
		Help:      "Total number of registration webhook deliveries, labelled by result.",
	},
	[]string{"result"},
)

// SessionAuthenticated reports whether the session currently holds an
// authenticated identity (1) or is anonymous (0).
var SessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "Whether the session currently holds an authenticated identity.",
	},
)

// ── Commerce metrics ──────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders created at checkout.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created at checkout.",
	},
)

// OrderStatusTransitionsTotal counts staff-driven order status transitions.
// Label:
//   - status: the new order status applied (e.g. "out_for_delivery")
var OrderStatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_transitions_total",
		Help:      "Total number of order status transitions, by new status.",
	},
	[]string{"status"},
)

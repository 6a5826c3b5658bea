// Package metrics defines and registers all custom Prometheus metrics for
// the syndic platform. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "syndic"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "timeout", "store_unavailable"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts tokens denylisted by logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of session tokens revoked at logout.",
	},
)

// SessionsRestoredTotal counts session restoration attempts by outcome.
// Label:
//   - outcome: "restored", "no_session", "rejected"
var SessionsRestoredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_restored_total",
		Help:      "Total number of session restoration attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// AuthStoreDuration measures how long a single credential-store round trip
// takes, including retried attempts individually.
// Label:
//   - operation: "find_by_email", "find_by_id", "update_last_login", "create"
var AuthStoreDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_store_duration_seconds",
		Help:      "Duration of auth session store round trips.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// MaintenanceRequestsTotal counts submitted maintenance requests.
// Label:
//   - priority: "LOW", "MEDIUM", "HIGH"
var MaintenanceRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_requests_total",
		Help:      "Total number of maintenance requests submitted, by priority.",
	},
	[]string{"priority"},
)

// PaymentsRecordedTotal counts bill payments recorded.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of bill payments recorded.",
	},
)

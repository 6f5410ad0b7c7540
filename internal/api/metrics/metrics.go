// Package metrics defines and registers all custom Prometheus metrics for
// the identity system. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// Result label values shared by the auth counters.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "failure" (validation error, conflict, ...)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRotationsTotal counts refresh-token exchanges. Failures include
// replayed, expired and tampered tokens.
var TokenRotationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rotations_total",
		Help:      "Total number of refresh token rotations, by result.",
	},
	[]string{"result"},
)

// AuditDroppedTotal counts audit events dropped because the dispatcher
// queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to queue overflow.",
	},
)

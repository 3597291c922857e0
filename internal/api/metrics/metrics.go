// Package metrics defines and registers all custom Prometheus metrics for the
// mentorship API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry via promauto
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mentorship"

// LoginsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts successful registrations.
// Label:
//   - role: "MENTOR" or "MENTEE"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful registrations, by role.",
	},
	[]string{"role"},
)

// GateRedirectsTotal counts requests turned away by the edge gate.
// Label:
//   - reason: "unauthenticated", "invalid_token", or "role_mismatch"
var GateRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_redirects_total",
		Help:      "Total number of page requests redirected by the request gate, by reason.",
	},
	[]string{"reason"},
)

// RequestsDecidedTotal counts mentor decisions on mentorship requests.
// Label:
//   - decision: "accepted" or "declined"
var RequestsDecidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_decided_total",
		Help:      "Total number of mentorship requests decided by mentors, by decision.",
	},
	[]string{"decision"},
)

// SessionsScheduledTotal counts sessions scheduled by mentors.
var SessionsScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_scheduled_total",
		Help:      "Total number of mentoring sessions scheduled.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for the
// user portal. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userportal"

// RegistrationsTotal counts accounts created through POST /register.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts successfully registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "wrong_password", or "unknown_email"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// SessionsRecoveredTotal counts session-cookie recoveries by the middleware.
// Label:
//   - result: "ok" (identity attached) or "invalid" (cookie present but unusable)
var SessionsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_recovered_total",
		Help:      "Total number of session cookie recoveries, labelled by result.",
	},
	[]string{"result"},
)

// AuditEventsTotal counts audit events persisted by the dispatcher.
// Label:
//   - type: "register", "login", "login_failed", or "logout"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events successfully recorded.",
	},
	[]string{"type"},
)

// AuditFailuresTotal counts audit events that could not be persisted.
var AuditFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_failures_total",
		Help:      "Total number of audit events dropped after a recording failure.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for the
// site platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry via promauto at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "siteapi"

// ActionsDispatchedTotal counts dispatched actions.
// Labels:
//   - registry: "admin" or "site"
//   - action: the dash-joined action name (e.g. "create-user")
//   - outcome: "success" or "failure"
var ActionsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_dispatched_total",
		Help:      "Total number of actions dispatched, by registry, name, and outcome.",
	},
	[]string{"registry", "action", "outcome"},
)

// ActionDuration measures handler execution time per action.
var ActionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "action_duration_seconds",
		Help:      "Duration of action handler execution, from lookup to envelope.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"registry", "action"},
)

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success", "user_not_found", "invalid_password", or "locked_out"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// AuditEntriesTotal counts audit log writes by action name.
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit log entries written, by action.",
	},
	[]string{"action"},
)

// SiteLockChecksTotal counts site-lock verifications.
// Label:
//   - result: "unlocked" or "locked"
var SiteLockChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "site_lock_checks_total",
		Help:      "Total number of site-lock cookie verifications, by result.",
	},
	[]string{"result"},
)

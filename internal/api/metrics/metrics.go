// Package metrics defines all custom Prometheus metrics for the campus
// events API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campus_events"

// ActivationsTotal counts account activation attempts.
// Label:
//   - result: "success", "not_provisioned", "already_activated", "email_taken", "error"
var ActivationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activations_total",
		Help:      "Total number of student activation attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts event signup attempts.
// Label:
//   - result: "success", "already_registered", "not_found", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_signups_total",
		Help:      "Total number of event signup attempts, by result.",
	},
	[]string{"result"},
)

// EventsCreatedTotal counts created events.
var EventsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created.",
	},
)

// RosterRowsImportedTotal counts roster rows successfully upserted.
var RosterRowsImportedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_rows_imported_total",
		Help:      "Total number of roster rows imported.",
	},
)

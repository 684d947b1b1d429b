// Package metrics declares the prometheus instruments exported by the
// workflow service on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsDispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courierapp_actions_dispatched_total",
		Help: "Total number of order actions successfully dispatched to the backend.",
	},
		[]string{"action"},
	)

	ActionErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courierapp_action_errors_total",
		Help: "Total number of order action dispatches that failed.",
	},
		[]string{"action", "reason"},
	)

	DuplicateSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courierapp_duplicate_submissions_total",
		Help: "Total number of dispatches rejected because a mutation was already in flight.",
	})

	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courierapp_backend_requests_total",
		Help: "Total number of requests issued to the order backend.",
	},
		[]string{"operation", "outcome"},
	)

	PendingMutations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courierapp_pending_mutations",
		Help: "Current number of status mutations in flight.",
	})

	SnapshotItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courierapp_order_snapshot_items",
		Help: "Current number of order snapshots held in the local store.",
	})
)

// Package jobs contains the scheduled background work of the service.
package jobs

import (
	"context"
	"log/slog"

	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderRefreshJob periodically re-fetches the order list into the snapshot
// store, so the rendering layer keeps re-rendering from backend-confirmed
// state even when no user action triggered a fetch.
type OrderRefreshJob struct {
	orderClient ports.OrderClient
	snapshots   ports.SnapshotStore
	spec        string
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewOrderRefreshJob creates a refresh job with a standard cron spec, e.g.
// "@every 30s".
func NewOrderRefreshJob(
	orderClient ports.OrderClient,
	snapshots ports.SnapshotStore,
	spec string,
	logger *slog.Logger,
) *OrderRefreshJob {
	return &OrderRefreshJob{
		orderClient: orderClient,
		snapshots:   snapshots,
		spec:        spec,
		cron:        cron.New(),
		logger:      logger.With("component", "order_refresh_job"),
	}
}

// Start schedules the refresh on the configured spec.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		list, err := j.orderClient.GetOrders(ctx, order.Filter{})
		if err != nil {
			// A failed refresh leaves the previous snapshots in place; the
			// next tick or user fetch catches up.
			j.logger.ErrorContext(ctx, "Order refresh failed", "error", err)
			return
		}

		j.snapshots.PutAll(list.Orders)
		j.logger.DebugContext(ctx, "Order snapshots refreshed", "count", len(list.Orders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the refresh job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}

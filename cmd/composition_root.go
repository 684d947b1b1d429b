package cmd

import (
	"log/slog"
	"time"

	inhttp "courierapp/internal/adapters/in/http"
	"courierapp/internal/adapters/out/backendhttp"
	"courierapp/internal/adapters/out/snapshot"
	"courierapp/internal/core/application/usecases/commands"
	"courierapp/internal/core/application/usecases/queries"
	"courierapp/internal/core/domain/services"
	"courierapp/internal/jobs"
	"courierapp/internal/pkg/inflight"
)

// CompositionRoot wires the adapters and shared state every handler hangs
// off: one backend client, one snapshot store, one mutation guard.
type CompositionRoot struct {
	backendClient *backendhttp.Client
	snapshots     *snapshot.Store
	mutations     *inflight.Guard
	policy        services.ActionPolicy
	config        Config
}

func NewCompositionRoot(config Config) CompositionRoot {
	timeout, err := time.ParseDuration(config.BackendTimeout)
	if err != nil {
		timeout = 0 // client falls back to its default
	}

	return CompositionRoot{
		backendClient: backendhttp.NewClient(config.BackendBaseURL, timeout),
		snapshots:     snapshot.NewStore(),
		mutations:     inflight.NewGuard(),
		policy:        services.NewActionPolicy(),
		config:        config,
	}
}

func (c *CompositionRoot) CreateDispatchOrderActionCommandHandler() commands.DispatchOrderActionCommandHandler {
	return commands.NewDispatchOrderActionCommandHandler(
		c.backendClient, c.snapshots, c.mutations, c.policy)
}

func (c *CompositionRoot) CreateTeardownSessionCommandHandler() commands.TeardownSessionCommandHandler {
	return commands.NewTeardownSessionCommandHandler(c.snapshots)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.backendClient, c.mutations, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.backendClient, c.mutations, c.policy)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.backendClient, c.backendClient)
}

func (c *CompositionRoot) CreateServer() *inhttp.Server {
	return inhttp.NewServer(
		c.CreateDispatchOrderActionCommandHandler(),
		c.CreateTeardownSessionCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetProfileQueryHandler(),
		inhttp.SupportContacts{
			Phone:    c.config.SupportPhone,
			Email:    c.config.SupportEmail,
			Telegram: c.config.SupportTelegram,
		},
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.backendClient, c.snapshots, c.config.OrderRefreshSpec, logger)
}

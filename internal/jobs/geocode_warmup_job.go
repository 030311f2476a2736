package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// warmupConcurrency caps parallel geocoder calls per warmup run.
const warmupConcurrency = 4

// GeocodeWarmupJob pre-resolves addresses into the geocode cache on a
// schedule. Restaurant addresses and the delivery addresses of unassigned
// orders are pushed through the caching resolver; already cached addresses
// cost one database read each.
type GeocodeWarmupJob struct {
	uowFactory ports.UnitOfWorkFactory
	resolver   ports.AddressResolver
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewGeocodeWarmupJob creates a job that warms the geocode cache every minute.
func NewGeocodeWarmupJob(
	uowFactory ports.UnitOfWorkFactory,
	resolver ports.AddressResolver,
	logger *slog.Logger,
) *GeocodeWarmupJob {
	return &GeocodeWarmupJob{
		uowFactory: uowFactory,
		resolver:   resolver,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "geocode_warmup_job"),
	}
}

// Start begins the warmup job, running at the top of every minute.
func (j *GeocodeWarmupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.runOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Geocode warmup run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geocode warmup job started (running every minute)")
	return nil
}

// Stop stops the warmup job.
func (j *GeocodeWarmupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Geocode warmup job stopped")
}

// runOnce executes a single warmup pass. Individual address failures are
// logged and do not abort the pass; an unresolvable address is an expected
// verdict, not an error worth reporting.
func (j *GeocodeWarmupJob) runOnce(ctx context.Context) error {
	addresses, err := j.collectAddresses(ctx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(warmupConcurrency)
	for _, address := range addresses {
		group.Go(func() error {
			_, resolveErr := j.resolver.Resolve(groupCtx, address)
			if resolveErr != nil && !errors.Is(resolveErr, ports.ErrAddressUnresolvable) {
				j.logger.WarnContext(groupCtx, "Address warmup failed",
					"address", address, "error", resolveErr)
			}
			return nil
		})
	}

	return group.Wait()
}

func (j *GeocodeWarmupJob) collectAddresses(ctx context.Context) ([]string, error) {
	uow := j.uowFactory.Create()

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := uow.OrderRepository().GetAllUnfinished(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	addresses := make([]string, 0, len(restaurants)+len(orders))

	add := func(address string) {
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}

	for _, aggregate := range restaurants {
		add(aggregate.Address())
	}
	for _, aggregate := range orders {
		if aggregate.Status() == order.Created {
			add(aggregate.DeliveryAddress())
		}
	}

	return addresses, nil
}

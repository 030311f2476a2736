package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fulfillment/internal/adapters/out/geocoder"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/locationrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. It owns the shared
// infrastructure objects (database handle, unit of work factory, geocode
// resolver) and hands out cheap per-request handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	resolver   ports.AddressResolver
}

// NewCompositionRoot builds the object graph from configuration.
// Fails if the geocoder client cannot be constructed.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	timeout := time.Duration(0)
	if config.GeocoderTimeoutSeconds != "" {
		seconds, err := strconv.Atoi(config.GeocoderTimeoutSeconds)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("invalid geocoder timeout %q: %w", config.GeocoderTimeoutSeconds, err)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	gateway, err := geocoder.NewClient(config.GeocoderBaseURL, config.GeocoderAPIKey, timeout)
	if err != nil {
		return CompositionRoot{}, err
	}

	locations := locationrepo.NewGormLocationRepository(gormDB)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   geocoder.NewCachingResolver(locations, gateway),
	}, nil
}

// CreateCreateProductCommandHandler wires the product catalog use case.
func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

// CreateCreateOrderCommandHandler wires the order creation use case.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateCreateRestaurantCommandHandler wires the restaurant registration use case.
func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

// CreateAssignRestaurantCommandHandler wires the restaurant assignment use case.
func (c *CompositionRoot) CreateAssignRestaurantCommandHandler() commands.AssignRestaurantCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRestaurantCommandHandler(f)
}

// CreateRouteOrdersQueryHandler wires the routing board query.
func (c *CompositionRoot) CreateRouteOrdersQueryHandler() queries.RouteOrdersQueryHandler {
	return queries.NewRouteOrdersQueryHandler(c.gormDB, c.resolver)
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory, c.resolver, logger)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

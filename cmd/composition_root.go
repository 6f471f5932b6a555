package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "loadboard/internal/adapters/in/http"
	"loadboard/internal/adapters/out/memory"
	"loadboard/internal/adapters/out/postgres"
	"loadboard/internal/adapters/out/redislock"
	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/ports"
	"loadboard/internal/jobs"
	"loadboard/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
	registry   *prometheus.Registry
	uowFactory ports.UnitOfWorkFactory
	locker     ports.LoadLocker
	closers    []func() error
}

// NewCompositionRoot opens the configured store and lock backend and
// registers the metrics. Close releases what it opened.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics.New(),
		registry: prometheus.NewRegistry(),
	}

	if err := errors.Join(
		c.metrics.Register(c.registry),
		c.registry.Register(collectors.NewGoCollector()),
		c.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})),
	); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	if err := c.openStore(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.openLocker(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

func (c *CompositionRoot) openStore() error {
	switch c.cfg.StoreBackend {
	case StoreMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
		c.logger.Warn("Using the in-memory store, data is lost on restart")
		return nil
	case StorePostgres:
		db, err := postgres.Open(c.cfg.Database().DSN())
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		c.closers = append(c.closers, sqlDB.Close)

		if c.cfg.DBAutoMigrate {
			if err := postgres.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", c.cfg.StoreBackend)
	}
}

func (c *CompositionRoot) openLocker() error {
	if c.cfg.RedisAddr == "" {
		c.locker = memory.NewLoadLocker()
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.RedisAddr,
		Password: c.cfg.RedisPassword,
		DB:       c.cfg.RedisDB,
	})
	c.closers = append(c.closers, client.Close)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.locker = redislock.NewLoadLocker(client, redislock.Options{Expiry: c.cfg.LockExpiry}, c.logger)
	return nil
}

// Close releases database and Redis connections.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) observability() commands.Observability {
	return commands.Observability{Logger: c.logger, Recorder: c.metrics}
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.loadUoWFactory(), c.observability())
}

func (c *CompositionRoot) CreateUpdateLoadCommandHandler() commands.UpdateLoadCommandHandler {
	return commands.NewUpdateLoadCommandHandler(c.loadUoWFactory(), c.locker, c.observability())
}

func (c *CompositionRoot) CreateDeleteLoadCommandHandler() commands.DeleteLoadCommandHandler {
	return commands.NewDeleteLoadCommandHandler(c.fullUoWFactory(), c.locker, c.observability())
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.fullUoWFactory(), c.locker, c.observability())
}

func (c *CompositionRoot) CreateUpdateBookingCommandHandler() commands.UpdateBookingCommandHandler {
	return commands.NewUpdateBookingCommandHandler(c.fullUoWFactory(), c.locker, c.observability())
}

func (c *CompositionRoot) CreateDeleteBookingCommandHandler() commands.DeleteBookingCommandHandler {
	return commands.NewDeleteBookingCommandHandler(c.fullUoWFactory(), c.locker, c.observability())
}

// Query handlers read through a unit of work that is never begun, so they
// use the plain connection.

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.uowFactory.Create().LoadRepository())
}

func (c *CompositionRoot) CreateListLoadsQueryHandler() queries.ListLoadsQueryHandler {
	return queries.NewListLoadsQueryHandler(c.uowFactory.Create().LoadRepository())
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.uowFactory.Create().BookingRepository())
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.uowFactory.Create().BookingRepository())
}

func (c *CompositionRoot) CreateListOrphanedBookingsQueryHandler() queries.ListOrphanedBookingsQueryHandler {
	return queries.NewListOrphanedBookingsQueryHandler(c.uowFactory.Create().BookingRepository())
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateLoadCommandHandler(),
		c.CreateUpdateLoadCommandHandler(),
		c.CreateDeleteLoadCommandHandler(),
		c.CreateCreateBookingCommandHandler(),
		c.CreateUpdateBookingCommandHandler(),
		c.CreateDeleteBookingCommandHandler(),
		c.CreateGetLoadQueryHandler(),
		c.CreateListLoadsQueryHandler(),
		c.CreateGetBookingQueryHandler(),
		c.CreateListBookingsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), httpin.RouterConfig{
		Logger:   c.logger,
		Observer: c.metrics,
		Gatherer: c.registry,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	audit := jobs.NewOrphanedBookingAuditJob(
		c.CreateListOrphanedBookingsQueryHandler(),
		c.metrics,
		c.cfg.OrphanAuditSchedule,
		c.logger,
	)
	return jobs.NewJobManager(audit)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

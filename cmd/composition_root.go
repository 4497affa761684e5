package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpadapter "loanaudit/internal/adapters/in/http"
	"loanaudit/internal/adapters/out/eventlog"
	"loanaudit/internal/adapters/out/kafka"
	"loanaudit/internal/adapters/out/memory"
	"loanaudit/internal/adapters/out/postgres"
	"loanaudit/internal/adapters/out/postgres/orderrepo"
	"loanaudit/internal/core/application/seed"
	"loanaudit/internal/core/application/usecases/commands"
	"loanaudit/internal/core/application/usecases/queries"
	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/jobs"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	reader     ports.OrderReader
	publisher  ports.EventPublisher
	clock      kernel.Clock
	logger     *slog.Logger
	closers    []func() error
}

// NewCompositionRoot opens the configured store and event publisher. Close
// releases them.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	if err := configs.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &CompositionRoot{
		configs: configs,
		clock:   kernel.SystemClock{},
		logger:  logger,
	}

	switch configs.StoreDriver {
	case StoreDriverPostgres:
		db, err := postgres.Connect(ctx, postgres.DSN(
			configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
		))
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, sqlDB.Close)
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		c.reader = orderrepo.NewGormOrderRepository(db)
	default:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.reader = store
	}

	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		publisher := kafka.NewPublisher(brokers, configs.KafkaOrderChangedTopic)
		c.closers = append(c.closers, publisher.Close)
		c.publisher = publisher
	} else {
		c.publisher = eventlog.NewPublisher(logger)
	}

	logger.InfoContext(ctx, "composition root ready",
		"store", configs.StoreDriver,
		"kafka", len(configs.KafkaBrokers()) > 0,
	)
	return c, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateApplyAuditActionCommandHandler() commands.ApplyAuditActionCommandHandler {
	return commands.NewApplyAuditActionCommandHandler(c.orderUoWFactory(), c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetInboxQueryHandler() queries.GetInboxQueryHandler {
	return queries.NewGetInboxQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateCountByStatusQueryHandler() queries.CountByStatusQueryHandler {
	return queries.NewCountByStatusQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateApplyAuditActionCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetInboxQueryHandler(),
		c.CreateCountByStatusQueryHandler(),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountByStatusQueryHandler(), c.configs.InboxDigestSchedule, c.logger)
}

// SeedMockOrders loads the demonstration orders that are not stored yet.
func (c *CompositionRoot) SeedMockOrders(ctx context.Context) (int, error) {
	return seed.Load(ctx, c.uowFactory)
}

// Close releases the store connection and flushes the event publisher.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	reconclient "github.com/you-humble/field-service/internal/client/http/reconciler"
	"github.com/you-humble/field-service/internal/config"
	"github.com/you-humble/field-service/internal/converter"
	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/internal/registry"
	ivrepository "github.com/you-humble/field-service/internal/repository/intervention"
	ptrepository "github.com/you-humble/field-service/internal/repository/parts"
	worepository "github.com/you-humble/field-service/internal/repository/workorder"
	schconsumer "github.com/you-humble/field-service/internal/service/consumer/schedule"
	"github.com/you-humble/field-service/internal/service/feed"
	woproducer "github.com/you-humble/field-service/internal/service/producer/workorder"
	service "github.com/you-humble/field-service/internal/service/workorder"
	thttp "github.com/you-humble/field-service/internal/transport/http/workorder/v1"
	"github.com/you-humble/field-service/pkg/closer"
	"github.com/you-humble/field-service/pkg/kafka"
	"github.com/you-humble/field-service/pkg/kafka/consumer"
	"github.com/you-humble/field-service/pkg/kafka/middleware"
	"github.com/you-humble/field-service/pkg/kafka/producer"
	"github.com/you-humble/field-service/pkg/logger"
	"github.com/you-humble/field-service/pkg/migrator"
)

type Converter interface {
	ScheduledJobToModel(data []byte) (model.ScheduledJob, error)
	ReconciledWorkOrderToBytes(m model.ReconciledWorkOrder) ([]byte, error)
}

type ScheduleConsumer interface {
	RunScheduledJobConsume(ctx context.Context) error
}

type MockFeed interface {
	Run(ctx context.Context) error
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	workOrderRepository    service.WorkOrderRepository
	interventionRepository service.InterventionRepository
	partRepository         service.PartRepository

	reconcilerClient service.ReconcilerClient
	registry         *registry.Registry

	consumerGroup        sarama.ConsumerGroup
	woScheduledConsumer  kafka.Consumer
	scheduleConsumer     ScheduleConsumer
	syncProducer         sarama.SyncProducer
	woReconciledProducer kafka.Producer
	workOrderProducer    service.ReconciledSender

	conv Converter

	service  thttp.WorkOrderService
	handler  *thttp.WorkOrderHandler
	mockFeed MockFeed

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) WorkOrderRepository(ctx context.Context) service.WorkOrderRepository {
	if d.workOrderRepository == nil {
		d.workOrderRepository = worepository.NewWorkOrderRepository(d.DBPool(ctx))
	}

	return d.workOrderRepository
}

func (d *di) InterventionRepository(ctx context.Context) service.InterventionRepository {
	if d.interventionRepository == nil {
		d.interventionRepository = ivrepository.NewInterventionRepository(d.DBPool(ctx))
	}

	return d.interventionRepository
}

func (d *di) PartRepository(ctx context.Context) service.PartRepository {
	if d.partRepository == nil {
		d.partRepository = ptrepository.NewPartRepository(d.DBPool(ctx))
	}

	return d.partRepository
}

func (d *di) ReconcilerClient(_ context.Context) service.ReconcilerClient {
	if d.reconcilerClient == nil {
		cfg := config.C().Reconciler

		d.reconcilerClient = reconclient.NewClient(
			cfg.URL(),
			cfg.Token(),
			cfg.Timeout(),
		)
	}

	return d.reconcilerClient
}

func (d *di) Registry(_ context.Context) *registry.Registry {
	if d.registry == nil {
		d.registry = registry.New()
	}

	return d.registry
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.ScheduledConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return d.consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) WorkOrderScheduledConsumer(ctx context.Context) kafka.Consumer {
	if d.woScheduledConsumer == nil {
		d.woScheduledConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.ScheduledTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.woScheduledConsumer
}

func (d *di) ScheduleConsumer(ctx context.Context) ScheduleConsumer {
	if d.scheduleConsumer == nil {
		d.scheduleConsumer = schconsumer.NewScheduleConsumer(
			d.WorkOrderScheduledConsumer(ctx),
			d.KafkaConverter(ctx),
			d.WorkOrderService(ctx),
		)
	}

	return d.scheduleConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ReconciledProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) WorkOrderReconciledProducer(ctx context.Context) kafka.Producer {
	if d.woReconciledProducer == nil {
		d.woReconciledProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.ReconciledTopic(),
			logger.L(),
		)
	}

	return d.woReconciledProducer
}

func (d *di) WorkOrderProducer(ctx context.Context) service.ReconciledSender {
	if d.workOrderProducer == nil {
		d.workOrderProducer = woproducer.NewWorkOrderProducer(
			d.WorkOrderReconciledProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.workOrderProducer
}

func (d *di) WorkOrderService(ctx context.Context) thttp.WorkOrderService {
	if d.service == nil {
		var events service.ReconciledSender
		if config.C().Feed.Source() == config.FeedSourceKafka {
			events = d.WorkOrderProducer(ctx)
		}

		d.service = service.NewWorkOrderService(
			d.WorkOrderRepository(ctx),
			d.InterventionRepository(ctx),
			d.PartRepository(ctx),
			d.ReconcilerClient(ctx),
			events,
			d.Registry(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) WorkOrderHandler(ctx context.Context) *thttp.WorkOrderHandler {
	if d.handler == nil {
		d.handler = thttp.NewWorkOrderHandler(d.WorkOrderService(ctx), d.Registry(ctx))
	}

	return d.handler
}

func (d *di) MockFeed(ctx context.Context) MockFeed {
	if d.mockFeed == nil {
		d.mockFeed = feed.NewMockFeed(
			d.WorkOrderService(ctx),
			config.C().Feed.MockInterval(),
		)
	}

	return d.mockFeed
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

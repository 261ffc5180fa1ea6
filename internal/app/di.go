package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	wooclient "github.com/yakkt/campervan-configurator/internal/client/http/woocommerce"
	"github.com/yakkt/campervan-configurator/internal/config"
	"github.com/yakkt/campervan-configurator/internal/converter"
	"github.com/yakkt/campervan-configurator/internal/migrator"
	"github.com/yakkt/campervan-configurator/internal/model"
	catrepo "github.com/yakkt/campervan-configurator/internal/repository/catalog"
	ordrepo "github.com/yakkt/campervan-configurator/internal/repository/order"
	sessrepo "github.com/yakkt/campervan-configurator/internal/repository/session"
	chkservice "github.com/yakkt/campervan-configurator/internal/service/checkout"
	svcconfigurator "github.com/yakkt/campervan-configurator/internal/service/configurator"
	catconsumer "github.com/yakkt/campervan-configurator/internal/service/consumer/catalog"
	ordproducer "github.com/yakkt/campervan-configurator/internal/service/producer/order"
	thttp "github.com/yakkt/campervan-configurator/internal/transport/http/configurator/v1"
	"github.com/yakkt/campervan-configurator/platform/closer"
	"github.com/yakkt/campervan-configurator/platform/kafka"
	"github.com/yakkt/campervan-configurator/platform/kafka/consumer"
	"github.com/yakkt/campervan-configurator/platform/kafka/middleware"
	"github.com/yakkt/campervan-configurator/platform/kafka/producer"
	"github.com/yakkt/campervan-configurator/platform/logger"
)

type Converter interface {
	OrderCreatedToPayload(m model.OrderCreated) ([]byte, error)
	CatalogToModel(data []byte) ([]model.Chassis, []model.Option, error)
}

type CatalogRepository interface {
	svcconfigurator.CatalogRepository
	CountChassis(ctx context.Context) (int64, error)
}

type ConfiguratorService interface {
	thttp.ConfiguratorService
	LoadCatalog(ctx context.Context) error
}

type CheckoutService interface {
	thttp.CheckoutService
}

type CatalogConsumer interface {
	RunCatalogUpdatedConsume(ctx context.Context) error
}

type Handler interface {
	Register(r chi.Router)
}

type di struct {
	mongoClient *mongo.Client
	catalogRepo CatalogRepository
	sessionRepo svcconfigurator.SessionRepository

	dbPool    *pgxpool.Pool
	migrator  *migrator.Migrator
	orderRepo chkservice.OrderRepository

	consumerGroup          sarama.ConsumerGroup
	catalogUpdatedConsumer kafka.Consumer
	catalogConsumer        CatalogConsumer

	syncProducer         sarama.SyncProducer
	orderCreatedProducer kafka.Producer
	orderProducer        chkservice.OrderCreatedSender

	wooClient chkservice.StoreClient

	conv Converter

	configurator ConfiguratorService
	checkout     CheckoutService
	handler      Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoClient(ctx context.Context) *mongo.Client {
	if d.mongoClient == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongoClient = mongoClient
	}

	return d.mongoClient
}

func (d *di) CatalogRepository(ctx context.Context) CatalogRepository {
	if d.catalogRepo == nil {
		cfg := config.C()
		db := d.MongoClient(ctx).Database(cfg.Mongo.DatabaseName())

		d.catalogRepo = catrepo.NewCatalogRepository(
			db.Collection(cfg.Mongo.ChassisCollection()),
			db.Collection(cfg.Mongo.OptionsCollection()),
		)
	}

	return d.catalogRepo
}

func (d *di) SessionRepository(_ context.Context) svcconfigurator.SessionRepository {
	if d.sessionRepo == nil {
		d.sessionRepo = sessrepo.NewSessionRepository()
	}

	return d.sessionRepo
}

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

func (d *di) OrderRepository(ctx context.Context) chkservice.OrderRepository {
	if d.orderRepo == nil {
		d.orderRepo = ordrepo.NewOrderRepository(d.DBPool(ctx))
	}

	return d.orderRepo
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(ctx context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.CatalogUpdatedConsumerConfig(),
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

func (d *di) CatalogUpdatedConsumer(ctx context.Context) kafka.Consumer {
	if d.catalogUpdatedConsumer == nil {
		d.catalogUpdatedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.CatalogUpdatedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.catalogUpdatedConsumer
}

func (d *di) CatalogConsumer(ctx context.Context) CatalogConsumer {
	if d.catalogConsumer == nil {
		d.catalogConsumer = catconsumer.NewCatalogConsumer(
			d.CatalogUpdatedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.ConfiguratorService(ctx),
		)
	}

	return d.catalogConsumer
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.OrderCreatedProducerConfig(),
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

func (d *di) OrderCreatedProducer(ctx context.Context) kafka.Producer {
	if d.orderCreatedProducer == nil {
		d.orderCreatedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.OrderCreatedTopic(),
			logger.L(),
		)
	}

	return d.orderCreatedProducer
}

func (d *di) OrderProducer(ctx context.Context) chkservice.OrderCreatedSender {
	if d.orderProducer == nil {
		d.orderProducer = ordproducer.NewOrderProducer(
			d.OrderCreatedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.orderProducer
}

func (d *di) WooClient(_ context.Context) chkservice.StoreClient {
	if d.wooClient == nil {
		cfg := config.C()

		d.wooClient = wooclient.NewClient(
			&http.Client{Timeout: cfg.WooCommerce.Timeout()},
			cfg.WooCommerce.BaseURL(),
			cfg.WooCommerce.APIKey(),
			cfg.WooCommerce.ProductID(),
		)
	}

	return d.wooClient
}

func (d *di) ConfiguratorService(ctx context.Context) ConfiguratorService {
	if d.configurator == nil {
		d.configurator = svcconfigurator.NewConfiguratorService(
			d.SessionRepository(ctx),
			d.CatalogRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.configurator
}

func (d *di) CheckoutService(ctx context.Context) CheckoutService {
	if d.checkout == nil {
		d.checkout = chkservice.NewCheckoutService(
			d.ConfiguratorService(ctx),
			d.WooClient(ctx),
			d.OrderRepository(ctx),
			d.OrderProducer(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.checkout
}

func (d *di) ConfiguratorHandler(ctx context.Context) Handler {
	if d.handler == nil {
		d.handler = thttp.NewConfiguratorHandler(
			d.ConfiguratorService(ctx),
			d.CheckoutService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

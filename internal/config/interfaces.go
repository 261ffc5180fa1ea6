package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type DocumentStore interface {
	DSN() string
	DatabaseName() string
	ChassisCollection() string
	OptionsCollection() string
}

type Kafka interface {
	Brokers() []string
	OrderCreatedTopic() string
	CatalogUpdatedTopic() string
	ConsumerGroupID() string
	OrderCreatedProducerConfig() *sarama.Config
	CatalogUpdatedConsumerConfig() *sarama.Config
}

type WooCommerce interface {
	BaseURL() string
	APIKey() string
	ProductID() int64
	Timeout() time.Duration
}

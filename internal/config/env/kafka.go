package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                 []string `env:"KAFKA_BROKERS,required"`
	OrderCreatedTopicName   string   `env:"ORDER_CREATED_TOPIC_NAME,required"`
	CatalogUpdatedTopicName string   `env:"CATALOG_UPDATED_TOPIC_NAME,required"`
	ConsumerGroupID         string   `env:"CATALOG_UPDATED_CONSUMER_GROUP_ID,required"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string           { return cfg.raw.Brokers }
func (cfg *kafka) OrderCreatedTopic() string   { return cfg.raw.OrderCreatedTopicName }
func (cfg *kafka) CatalogUpdatedTopic() string { return cfg.raw.CatalogUpdatedTopicName }
func (cfg *kafka) ConsumerGroupID() string     { return cfg.raw.ConsumerGroupID }

func (cfg *kafka) OrderCreatedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}

func (cfg *kafka) CatalogUpdatedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

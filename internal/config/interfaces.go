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

type Kafka interface {
	Brokers() []string
	ScheduledTopic() string
	ReconciledTopic() string
	ConsumerGroupID() string
	ScheduledConsumerConfig() *sarama.Config
	ReconciledProducerConfig() *sarama.Config
}

type Reconciler interface {
	URL() string
	Token() string
	Timeout() time.Duration
}

type Feed interface {
	Source() string
	MockInterval() time.Duration
}

const (
	FeedSourceKafka = "kafka"
	FeedSourceMock  = "mock"
)

package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"ordertracker/internal/pkg/config"
	"ordertracker/pkg/logger"
)

const (
	producerRetryMax     = 3
	producerRetryBackoff = 250 * time.Millisecond
	producerTimeout      = 5 * time.Second
)

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg, err := newBaseConfig(versionStr)
	if err != nil {
		return nil, err
	}

	// SyncProducer requires successes to be returned.
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerRetryMax
	cfg.Producer.Retry.Backoff = producerRetryBackoff
	cfg.Producer.Timeout = producerTimeout
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	brokers := SplitBrokers(cfg.Brokers)

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	kafkaLog.Info("Kafka producer ready")
	return producer, nil
}

package kafka

import (
	"context"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/retrier"
	"ordertracker/pkg/retrier/backoff_adapter"
)

// SplitBrokers turns a comma separated broker list into addresses.
func SplitBrokers(raw string) []string {
	brokers := make([]string, 0, strings.Count(raw, ",")+1)
	for _, broker := range strings.Split(raw, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func newBaseConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	return cfg, nil
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retry := backoff_adapter.New(retrier.StartupConfig())

	var attempt uint64
	err := retry.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting Kafka connection",
			logger.NewField("attempt", attempt),
		)

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close Kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.Error("Kafka connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.Info("Kafka connection established",
		logger.NewField("attempts", attempt),
	)
	return nil
}

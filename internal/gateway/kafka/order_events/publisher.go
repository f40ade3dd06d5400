// Package order_events announces persisted order changes on Kafka.
package order_events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"ordertracker/internal/entities"
	"ordertracker/pkg/logger"
)

const actionHeader = "action"

type Publisher struct {
	log      publisherLogger
	producer producer
	topic    string
}

func New(log publisherLogger, producer producer, topic string) *Publisher {
	publisherLog := log.With(logger.NewField("topic", topic))

	return &Publisher{
		log:      publisherLog,
		producer: producer,
		topic:    topic,
	}
}

// OrderChanged sends the event keyed by order id, so all changes of one order
// land on one partition in commit order. Failures are logged and counted only:
// the change is already stored.
func (p *Publisher) OrderChanged(_ context.Context, event entities.OrderEvent) {
	action := event.Action.String()

	payload, err := json.Marshal(toOrderChangedDTO(event))
	if err != nil {
		EventsPublishedTotal.WithLabelValues(action, "error").Inc()
		p.log.With(
			logger.NewField("order_id", event.OrderID),
			logger.NewField("error", err),
		).Error("marshal order event")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(actionHeader), Value: []byte(action)},
		},
		Timestamp: event.At,
	}

	start := time.Now()
	partition, offset, err := p.producer.SendMessage(msg)
	PublishDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		EventsPublishedTotal.WithLabelValues(action, "error").Inc()
		p.log.With(
			logger.NewField("order_id", event.OrderID),
			logger.NewField("action", action),
			logger.NewField("error", err),
		).Warn("publish order event")
		return
	}

	EventsPublishedTotal.WithLabelValues(action, "ok").Inc()
	p.log.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("action", action),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order event published")
}

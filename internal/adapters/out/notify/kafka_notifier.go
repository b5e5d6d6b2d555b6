// Package notify publishes customer notifications. Kafka is the transport
// when brokers are configured; otherwise events are only logged. Async
// detaches delivery from the request that produced the event.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/core/ports"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// KafkaNotifier writes each event to one topic keyed by order id, so every
// event of an order lands in the same partition.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *log.Entry
}

// NewKafkaNotifier connects an idempotent synchronous producer to brokers.
func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaNotifierWithProducer(producer, topic), nil
}

func NewKafkaNotifierWithProducer(producer sarama.SyncProducer, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
		logger:   log.WithField("component", "kafka-notifier"),
	}
}

func (n *KafkaNotifier) Notify(_ context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     n.topic,
		Key:       sarama.StringEncoder(event.OrderID.String()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.Type)},
		},
	}

	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send %s for order %s: %w", event.Type, event.OrderID, err)
	}

	n.logger.WithFields(log.Fields{
		"type":      event.Type,
		"order_id":  event.OrderID.String(),
		"partition": partition,
		"offset":    offset,
	}).Debug("notification published")
	return nil
}

func (n *KafkaNotifier) Close() error {
	if err := n.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"loanaudit/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = (*Publisher)(nil)

const defaultProducer = "loan-audit"

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes OrderStatusChanged envelopes synchronously, so the caller
// learns about delivery failures.
type Publisher struct {
	writer   MessageWriter
	producer string
}

// NewPublisher creates a publisher backed by a kafka-go writer that hashes keys
// to partitions and waits for all in-sync replicas.
//
// Example:
//
//	publisher := kafka.NewPublisher([]string{"localhost:9092"}, "order.status.changed")
//	defer publisher.Close()
func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

// NewPublisherWithWriter lets tests and custom setups supply the writer.
func NewPublisherWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer, producer: defaultProducer}
}

// PublishOrderStatusChanged sends one envelope keyed by the order ID.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	envelope, err := newOrderStatusChangedEnvelope(p.producer, event)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", EventOrderStatusChanged, err)
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", EventOrderStatusChanged, err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(EventOrderStatusChanged)},
		},
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s for order %s: %w", EventOrderStatusChanged, event.OrderID, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

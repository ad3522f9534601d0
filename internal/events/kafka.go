package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
)

// KafkaAnnouncer publishes summary events to a Kafka topic, creating its
// writer lazily on first use.
type KafkaAnnouncer struct {
	brokers []string
	topic   string
	mu      sync.Mutex
	writer  *kafka.Writer
}

// NewKafkaAnnouncer creates a KafkaAnnouncer for the given brokers and topic.
func NewKafkaAnnouncer(brokers []string, topic string) *KafkaAnnouncer {
	return &KafkaAnnouncer{brokers: brokers, topic: topic}
}

// Announce encodes the event and writes it keyed by export ID.
func (a *KafkaAnnouncer) Announce(ctx context.Context, evt ExportSummarized) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode summary event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.ExportID),
		Value: payload,
	}
	return a.lazyWriter().WriteMessages(ctx, msg)
}

func (a *KafkaAnnouncer) lazyWriter() *kafka.Writer {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.writer == nil {
		a.writer = &kafka.Writer{
			Addr:         kafka.TCP(a.brokers...),
			Topic:        a.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return a.writer
}

// Close releases the writer if one was created.
func (a *KafkaAnnouncer) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.writer == nil {
		return nil
	}
	err := a.writer.Close()
	a.writer = nil
	return err
}

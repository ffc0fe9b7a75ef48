package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"tourvis/pkg/logger"
)

const publishTimeout = 10 * time.Second

type kafkaPublisher struct {
	writer *kafka.Writer
	source string
	log    *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic, source string, log *logger.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // hash by key so events for one booking stay ordered
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 100 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "message", msg, "args", args)
		}),
	}

	log.Info("Kafka event publisher initialized", "topic", topic, "brokers", brokers)

	return &kafkaPublisher{
		writer: writer,
		source: source,
		log:    log,
	}
}

// Publish encodes the payload and writes it in the background. The caller's
// context only carries values; the write gets its own timeout so an
// already-answered HTTP request does not cancel the publish.
func (p *kafkaPublisher) Publish(_ context.Context, eventType, key string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("Failed to encode event payload", "event_type", eventType, "key", key, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.New().String())},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.log.Error("Failed to publish event",
				"event_type", eventType,
				"key", key,
				"error", err,
			)
		}
	}()
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

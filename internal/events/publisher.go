package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"aisle-finder/internal/model"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Publisher streams committed search log rows to downstream consumers.
type Publisher interface {
	PublishSearchLog(ctx context.Context, entry *model.SearchLog) error
	Close() error
}

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	logger zerolog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers.
// Writes are asynchronous: WriteMessages only queues, and delivery failures are
// reported through the writer's Completion callback.
func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
	p := newKafkaPublisher(w, logger)
	w.Completion = p.reportDelivery
	return p
}

func newKafkaPublisher(w messageWriter, logger zerolog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		writer: w,
		logger: logger.With().Str("publisher", "search_log").Logger(),
	}
}

// PublishSearchLog writes the entry as JSON, keyed by its id.
func (p *kafkaPublisher) PublishSearchLog(ctx context.Context, entry *model.SearchLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode search log: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(entry.ID, 10)),
		Value: data,
		Time:  entry.CreatedAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish search log: %w", err)
	}

	p.logger.Debug().Int64("search_log_id", entry.ID).Msg("search log published")
	return nil
}

// reportDelivery logs batches the async writer failed to deliver.
func (p *kafkaPublisher) reportDelivery(messages []kafka.Message, err error) {
	if err == nil {
		return
	}

	ids := make([]string, len(messages))
	for i, m := range messages {
		ids[i] = string(m.Key)
	}
	p.logger.Warn().
		Err(err).
		Strs("search_log_ids", ids).
		Msg("failed to deliver search logs")
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishSearchLog(context.Context, *model.SearchLog) error { return nil }

func (NopPublisher) Close() error { return nil }

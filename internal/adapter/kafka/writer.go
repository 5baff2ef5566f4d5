package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/larseberhart/nuccalc/internal/config"
	"github.com/larseberhart/nuccalc/internal/effects"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes computed results to a Kafka topic.
// It implements service.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured results topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaResultTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes one result and writes it to the results topic.
func (w *Writer) Publish(ctx context.Context, res effects.Result) error {
	msg, err := serializeToMessage(res)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Result into a Kafka message. The key is the
// deterministic result ID, so replays of the same scenario land on the same
// partition and are trivially deduplicated downstream.
func serializeToMessage(res effects.Result) (kafkago.Message, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize result: %w", err)
	}

	burst := "surface"
	if res.Detonation.Airburst {
		burst = "air"
	}
	return kafkago.Message{
		Key:   []byte(res.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "burst_type", Value: []byte(burst)},
			{Key: "computed_at", Value: []byte(res.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}

// Package kafka publishes finished analyses to a Kafka topic for downstream
// renderers. The engine treats it as a fire-and-forget callback; delivery
// semantics beyond the produce acknowledgement are the consumer's problem.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/hexsight/contextspace/internal/config"
	"github.com/hexsight/contextspace/internal/domain"
)

// Renderer produces render payloads to a Kafka topic.
// It implements engine.Renderer.
type Renderer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewRenderer creates a Kafka producer for the configured analyses topic.
func NewRenderer(cfg *config.Config, logger *slog.Logger) *Renderer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.RendererTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Renderer{writer: w, logger: logger}
}

// Render serializes and publishes one analysis payload.
func (r *Renderer) Render(ctx context.Context, payload domain.RenderPayload) error {
	msg, err := serializeToMessage(payload)
	if err != nil {
		return err
	}
	return r.writer.WriteMessages(ctx, msg)
}

func (r *Renderer) Close() error {
	return r.writer.Close()
}

// serializeToMessage marshals a render payload into a Kafka message keyed by
// analysis ID so replays of the same analysis land in one partition.
func serializeToMessage(payload domain.RenderPayload) (kafkago.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize render payload: %w", err)
	}
	a := payload.GridAnalysis
	return kafkago.Message{
		Key:   []byte(a.ID.String()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "region", Value: []byte(a.RegionName)},
			{Key: "scenario", Value: []byte(a.Scenario)},
			{Key: "generated_at", Value: []byte(a.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}

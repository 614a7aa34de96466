package fanout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"

	"github.com/segmentio/kafka-go"
)

// KafkaRelay publishes room messages to a topic every instance consumes, so a
// client connected to any instance receives events raised on any other.
type KafkaRelay struct {
	writer *kafka.Writer
}

var _ Transport = (*KafkaRelay)(nil)

func NewKafkaRelay(cfg config.Kafka) *KafkaRelay {
	return &KafkaRelay{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (r *KafkaRelay) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	// ключ по комнате сохраняет порядок событий внутри комнаты
	return r.writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.Room), Value: data})
}

func (r *KafkaRelay) Close() error {
	return r.writer.Close()
}

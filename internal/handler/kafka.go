package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// RoomSender delivers a relayed message to the clients of this instance.
type RoomSender interface {
	Send(ctx context.Context, msg fanout.Message) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	rooms    RoomSender
}

// NewKafkaHandler читает события комнат, опубликованные любым инстансом.
// GroupID должен быть уникален для инстанса, иначе события поделятся между ними.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, rooms RoomSender) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			GroupID:     cfg.GroupID,
			Topic:       cfg.Topic,
			MaxWait:     cfg.ReaderMaxWait,
			StartOffset: kafka.LastOffset,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: utils.NewValidator(),
		rooms:    rooms,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		start := time.Now()
		if err := h.handleRoomMessage(ctx, m); err != nil {
			relayFailed.WithLabelValues(sourceKafka).Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			relayDLQ.Inc()
		} else {
			relayProcessed.WithLabelValues(sourceKafka).Inc()
		}
		relayDuration.WithLabelValues(sourceKafka).Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleRoomMessage(ctx context.Context, m kafka.Message) error {
	msg, err := decodeRoomMessage(h.validate, m.Value)
	if err != nil {
		return err
	}
	return h.rooms.Send(ctx, msg)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

func decodeRoomMessage(validate *validator.Validate, data []byte) (fanout.Message, error) {
	var msg fanout.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fanout.Message{}, fmt.Errorf("failed to unmarshal room message: %w", err)
	}
	if err := validate.Struct(msg); err != nil {
		return fanout.Message{}, fmt.Errorf("invalid room message: %w", err)
	}
	return msg, nil
}

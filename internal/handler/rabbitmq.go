package handler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
)

type rabbitHandler struct {
	mq       *fanout.RabbitMQ
	channel  *amqp.Channel
	queue    string
	logger   *slog.Logger
	validate *validator.Validate
	rooms    RoomSender
}

// NewRabbitHandler binds an exclusive server-named queue to the fanout
// exchange, so every instance receives every room message.
func NewRabbitHandler(logger *slog.Logger, mq *fanout.RabbitMQ, rooms RoomSender) (*rabbitHandler, error) {
	channel, err := mq.Conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := channel.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(q.Name, "", mq.Exchange, false, nil); err != nil {
		channel.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &rabbitHandler{
		mq:       mq,
		channel:  channel,
		queue:    q.Name,
		logger:   logger.With(slog.String("handler", "rabbitmq")),
		validate: utils.NewValidator(),
		rooms:    rooms,
	}, nil
}

func (h *rabbitHandler) Consume(ctx context.Context) {
	deliveries, err := h.channel.ConsumeWithContext(ctx,
		h.queue, // queue
		"",      // consumer
		true,    // auto-ack
		true,    // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		h.logger.Error("failed to register consumer", slog.Any("error", err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				h.logger.Warn("delivery channel closed")
				return
			}
			start := time.Now()
			// события в комнаты эфемерны, DLQ для них не нужен
			if err := h.handleRoomMessage(ctx, d.Body); err != nil {
				relayFailed.WithLabelValues(sourceRabbitMQ).Inc()
				h.logger.Error("failed to handle message", slog.Any("error", err))
				continue
			}
			relayProcessed.WithLabelValues(sourceRabbitMQ).Inc()
			relayDuration.WithLabelValues(sourceRabbitMQ).Observe(time.Since(start).Seconds())
		}
	}
}

func (h *rabbitHandler) handleRoomMessage(ctx context.Context, body []byte) error {
	msg, err := decodeRoomMessage(h.validate, body)
	if err != nil {
		return err
	}
	return h.rooms.Send(ctx, msg)
}

func (h *rabbitHandler) Close() error {
	if err := h.channel.Close(); err != nil {
		return err
	}
	return h.mq.Close()
}

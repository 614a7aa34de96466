package fanout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds the broker connection shared by the relay publisher and the
// per-instance consumer.
type RabbitMQ struct {
	Conn     *amqp.Connection
	Channel  *amqp.Channel
	Exchange string
}

func ConnectRabbitMQ(cfg config.RabbitMQ) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"fanout",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQ{Conn: conn, Channel: channel, Exchange: cfg.Exchange}, nil
}

func (r *RabbitMQ) Close() error {
	if r.Channel != nil {
		r.Channel.Close()
	}
	if r.Conn != nil {
		return r.Conn.Close()
	}
	return nil
}

// RabbitRelay publishes room messages to the fanout exchange.
type RabbitRelay struct {
	mq *RabbitMQ
}

var _ Transport = (*RabbitRelay)(nil)

func NewRabbitRelay(mq *RabbitMQ) *RabbitRelay {
	return &RabbitRelay{mq: mq}
}

func (r *RabbitRelay) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	return r.mq.Channel.PublishWithContext(ctx,
		r.mq.Exchange, // exchange
		"",            // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		})
}

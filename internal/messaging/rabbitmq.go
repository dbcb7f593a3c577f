package messaging

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"moto-rental-backend/internal/logger"
)

// Broker topology for motorcycle notifications.
const (
	ExchangeName = "motorcycle_events"
	QueueName    = "motorcycle_created_queue"
	RoutingKey   = "motorcycle.created"
)

// RabbitMQ wraps a broker connection and channel with the exchange/queue
// topology already declared.
type RabbitMQ struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Connect dials the broker with bounded retry and declares the topology.
func Connect(ctx context.Context, url string) (*RabbitMQ, error) {
	const maxRetries = 10
	retryDelay := 1 * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		mq, err := dial(url)
		if err == nil {
			logger.Info("Connected to RabbitMQ", "attempt", attempt)
			return mq, nil
		}
		lastErr = err
		logger.Warn("RabbitMQ connection attempt failed", "attempt", attempt, "max_retries", maxRetries, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
			retryDelay = time.Duration(float64(retryDelay) * 1.5)
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}
		}
	}
	return nil, fmt.Errorf("failed to connect to rabbitmq after %d attempts: %w", maxRetries, lastErr)
}

func dial(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &RabbitMQ{conn: conn, ch: ch}, nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (mq *RabbitMQ) Close() {
	if mq.ch != nil {
		_ = mq.ch.Close()
	}
	if mq.conn != nil {
		_ = mq.conn.Close()
	}
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/service"
)

// MotorcycleCreatedEvent is the wire format for motorcycle registration
// notifications.
type MotorcycleCreatedEvent struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Year  int32  `json:"year"`
}

type eventPublisher struct {
	mq *RabbitMQ
}

func NewEventPublisher(mq *RabbitMQ) service.EventPublisher {
	return &eventPublisher{mq: mq}
}

func (p *eventPublisher) PublishMotorcycleCreated(ctx context.Context, moto *domain.Motorcycle) error {
	body, err := json.Marshal(MotorcycleCreatedEvent{
		ID:    moto.ID,
		Model: moto.Model,
		Plate: moto.Plate,
		Year:  moto.Year,
	})
	if err != nil {
		return fmt.Errorf("marshal motorcycle created event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.mq.ch.PublishWithContext(
		publishCtx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

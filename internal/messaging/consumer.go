package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
)

// MotorcycleCreatedConsumer reads motorcycle-created notifications from the
// queue and records an event row for motorcycles manufactured in 2024.
type MotorcycleCreatedConsumer struct {
	mq             *RabbitMQ
	motorcycleRepo repository.MotorcycleRepository
	eventRepo      repository.MotorcycleEventRepository
}

func NewMotorcycleCreatedConsumer(mq *RabbitMQ, motorcycleRepo repository.MotorcycleRepository, eventRepo repository.MotorcycleEventRepository) *MotorcycleCreatedConsumer {
	return &MotorcycleCreatedConsumer{
		mq:             mq,
		motorcycleRepo: motorcycleRepo,
		eventRepo:      eventRepo,
	}
}

// Start consumes deliveries until the context is cancelled. Messages are
// acked after successful handling; handler failures nack with requeue.
func (c *MotorcycleCreatedConsumer) Start(ctx context.Context) error {
	if err := c.mq.ch.Qos(10, 0, false); err != nil {
		return err
	}

	deliveries, err := c.mq.ch.Consume(QueueName, "moto-worker", false, false, false, false, nil)
	if err != nil {
		return err
	}
	logger.Info("Consuming motorcycle created events", "queue", QueueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				logger.Error("Failed to process motorcycle created event", "error", err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *MotorcycleCreatedConsumer) handle(ctx context.Context, body []byte) error {
	var event MotorcycleCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Warn("Discarding malformed motorcycle created event", "error", err)
		return nil
	}
	if event.ID == "" || event.Plate == "" {
		logger.Warn("Discarding incomplete motorcycle created event", "motorcycle_id", event.ID)
		return nil
	}

	// Only 2024 motorcycles are recorded.
	if event.Year != 2024 {
		logger.Debug("Skipping motorcycle event", "plate", event.Plate, "year", event.Year)
		return nil
	}

	// The motorcycle must already exist in the store.
	if _, err := c.motorcycleRepo.GetByID(ctx, event.ID); err != nil {
		if errors.Is(err, domain.ErrMotorcycleNotFound) {
			logger.Warn("Skipping event for unknown motorcycle", "motorcycle_id", event.ID)
			return nil
		}
		return err
	}

	record := &domain.MotorcycleEvent{
		ID:           uuid.NewString(),
		MotorcycleID: event.ID,
		EventType:    domain.EventTypeMotorcycleCreated,
		EventDate:    time.Now().UTC(),
		Year:         event.Year,
		Model:        event.Model,
		Plate:        event.Plate,
	}
	if err := c.eventRepo.Create(ctx, record); err != nil {
		return err
	}

	logger.Info("Recorded motorcycle created event", "motorcycle_id", event.ID, "plate", event.Plate)
	return nil
}

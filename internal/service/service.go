package service

import (
	"context"
	"time"

	"moto-rental-backend/internal/domain"
)

type RentalService interface {
	Create(ctx context.Context, motorcycleID, courierID string, plan domain.RentalPlan, startDate, expectedEndDate time.Time) (*domain.Rental, error)
	Return(ctx context.Context, rentalID string, returnDate time.Time) (*domain.Rental, error)
	GetByID(ctx context.Context, rentalID string) (*domain.Rental, error)
}

type MotorcycleService interface {
	Create(ctx context.Context, moto *domain.Motorcycle) (*domain.Motorcycle, error)
	GetByID(ctx context.Context, id string) (*domain.Motorcycle, error)
	List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error)
	Update(ctx context.Context, id, plate, model string) (*domain.Motorcycle, error)
	Delete(ctx context.Context, id string) error
}

type CourierService interface {
	Create(ctx context.Context, courier *domain.Courier) (*domain.Courier, error)
	GetByID(ctx context.Context, id string) (*domain.Courier, error)
	List(ctx context.Context) ([]domain.Courier, error)
	UpdateCNHImage(ctx context.Context, id, imageURL string) (*domain.Courier, error)
}

// EventPublisher pushes domain notifications onto the message queue. Publish
// failures are logged, not propagated; registration must not fail because the
// broker is down.
type EventPublisher interface {
	PublishMotorcycleCreated(ctx context.Context, moto *domain.Motorcycle) error
}

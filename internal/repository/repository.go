package repository

import (
	"context"

	"moto-rental-backend/internal/domain"
)

type CourierRepository interface {
	Create(ctx context.Context, courier *domain.Courier) error
	GetByID(ctx context.Context, id string) (*domain.Courier, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*domain.Courier, error)
	GetByCNHNumber(ctx context.Context, cnhNumber string) (*domain.Courier, error)
	List(ctx context.Context) ([]domain.Courier, error)
	UpdateCNHImage(ctx context.Context, id, imageURL string) error
}

type MotorcycleRepository interface {
	Create(ctx context.Context, moto *domain.Motorcycle) error
	GetByID(ctx context.Context, id string) (*domain.Motorcycle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Motorcycle, error)
	List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error)
	// Update rewrites the two mutable fields, plate and model.
	Update(ctx context.Context, id, plate, model string) error
	Delete(ctx context.Context, id string) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	ListActiveByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error)
	// CompleteReturn persists the one-time Active -> Returned transition. The
	// write is conditional on end_date still being null; a raced update
	// surfaces as domain.ErrRentalAlreadyReturned.
	CompleteReturn(ctx context.Context, rental *domain.Rental) error
}

type MotorcycleEventRepository interface {
	Create(ctx context.Context, event *domain.MotorcycleEvent) error
	ListByYear(ctx context.Context, year int32) ([]domain.MotorcycleEvent, error)
}

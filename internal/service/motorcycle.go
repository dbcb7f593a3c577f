package service

import (
	"context"
	"errors"
	"fmt"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
)

type motorcycleService struct {
	motorcycleRepo repository.MotorcycleRepository
	rentalRepo     repository.RentalRepository
	publisher      EventPublisher
}

// NewMotorcycleService creates a motorcycle service. publisher may be nil
// when the process runs without a message broker.
func NewMotorcycleService(motorcycleRepo repository.MotorcycleRepository, rentalRepo repository.RentalRepository, publisher EventPublisher) MotorcycleService {
	return &motorcycleService{
		motorcycleRepo: motorcycleRepo,
		rentalRepo:     rentalRepo,
		publisher:      publisher,
	}
}

func (s *motorcycleService) Create(ctx context.Context, moto *domain.Motorcycle) (*domain.Motorcycle, error) {
	if _, err := s.motorcycleRepo.GetByID(ctx, moto.ID); err == nil {
		return nil, domain.ErrMotorcycleAlreadyExists
	} else if !errors.Is(err, domain.ErrMotorcycleNotFound) {
		return nil, err
	}

	if _, err := s.motorcycleRepo.GetByPlate(ctx, moto.Plate); err == nil {
		return nil, domain.ErrMotorcycleAlreadyExists
	} else if !errors.Is(err, domain.ErrMotorcycleNotFound) {
		return nil, err
	}

	if err := s.motorcycleRepo.Create(ctx, moto); err != nil {
		return nil, err
	}
	logger.Info("Motorcycle created", "motorcycle_id", moto.ID, "plate", moto.Plate)

	if s.publisher != nil {
		if err := s.publisher.PublishMotorcycleCreated(ctx, moto); err != nil {
			logger.Error("Failed to publish motorcycle created event", "motorcycle_id", moto.ID, "error", err)
		}
	}

	return moto, nil
}

func (s *motorcycleService) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	return s.motorcycleRepo.GetByID(ctx, id)
}

func (s *motorcycleService) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	return s.motorcycleRepo.List(ctx, plateFilter)
}

func (s *motorcycleService) Update(ctx context.Context, id, plate, model string) (*domain.Motorcycle, error) {
	moto, err := s.motorcycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if plate != moto.Plate {
		if _, err := s.motorcycleRepo.GetByPlate(ctx, plate); err == nil {
			return nil, domain.ErrMotorcycleAlreadyExists
		} else if !errors.Is(err, domain.ErrMotorcycleNotFound) {
			return nil, err
		}
	}

	if err := s.motorcycleRepo.Update(ctx, id, plate, model); err != nil {
		return nil, err
	}
	moto.Plate = plate
	moto.Model = model
	logger.Info("Motorcycle updated", "motorcycle_id", id, "plate", plate, "model", model)
	return moto, nil
}

func (s *motorcycleService) Delete(ctx context.Context, id string) error {
	if _, err := s.motorcycleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	activeRentals, err := s.rentalRepo.ListActiveByMotorcycle(ctx, id)
	if err != nil {
		return fmt.Errorf("listing active rentals: %w", err)
	}
	if len(activeRentals) > 0 {
		logger.Warn("Refusing to delete motorcycle with active rentals", "motorcycle_id", id)
		return domain.ErrMotorcycleHasRentals
	}

	if err := s.motorcycleRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("Motorcycle deleted", "motorcycle_id", id)
	return nil
}

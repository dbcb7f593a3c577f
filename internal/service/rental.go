package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
	"moto-rental-backend/internal/utils"
)

type rentalService struct {
	rentalRepo     repository.RentalRepository
	motorcycleRepo repository.MotorcycleRepository
	courierRepo    repository.CourierRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	motorcycleRepo repository.MotorcycleRepository,
	courierRepo repository.CourierRepository,
) RentalService {
	return &rentalService{
		rentalRepo:     rentalRepo,
		motorcycleRepo: motorcycleRepo,
		courierRepo:    courierRepo,
	}
}

// validateRentalRequest applies the eligibility rules over already-fetched
// data, in order, first failure wins.
func validateRentalRequest(courier *domain.Courier, moto *domain.Motorcycle, activeRentals []domain.Rental) error {
	if moto == nil {
		return domain.ErrMotorcycleNotFound
	}
	if courier == nil {
		return domain.ErrCourierNotFound
	}
	if !courier.CNHType.AllowsMotorcycle() {
		return domain.ErrLicenseNotEligible
	}
	if len(activeRentals) > 0 {
		return domain.ErrMotorcycleUnavailable
	}
	return nil
}

func (s *rentalService) Create(ctx context.Context, motorcycleID, courierID string, plan domain.RentalPlan, startDate, expectedEndDate time.Time) (*domain.Rental, error) {
	moto, err := s.motorcycleRepo.GetByID(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}
	courier, err := s.courierRepo.GetByID(ctx, courierID)
	if err != nil {
		return nil, err
	}
	activeRentals, err := s.rentalRepo.ListActiveByMotorcycle(ctx, motorcycleID)
	if err != nil {
		return nil, fmt.Errorf("listing active rentals: %w", err)
	}

	if err := validateRentalRequest(courier, moto, activeRentals); err != nil {
		logger.Warn("Rental request rejected", "motorcycle_id", motorcycleID, "courier_id", courierID, "reason", err)
		return nil, err
	}

	rental := &domain.Rental{
		ID:              uuid.NewString(),
		MotorcycleID:    motorcycleID,
		CourierID:       courierID,
		Plan:            plan,
		StartDate:       startDate,
		ExpectedEndDate: expectedEndDate,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "motorcycle_id", motorcycleID, "courier_id", courierID, "plan_days", plan.Days())
	return rental, nil
}

func (s *rentalService) Return(ctx context.Context, rentalID string, returnDate time.Time) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Returned() {
		return nil, domain.ErrRentalAlreadyReturned
	}

	bd, err := utils.CalculateReturnCost(rental.Plan, rental.StartDate, rental.ExpectedEndDate, returnDate)
	if err != nil {
		return nil, err
	}

	end := returnDate
	rental.EndDate = &end
	rental.TotalCostCents = &bd.TotalCostCents
	rental.FineAmountCents = &bd.FineCents
	rental.AdditionalDaysCostCents = &bd.AdditionalDaysCostCents
	rental.AdditionalDays = &bd.AdditionalDays

	if err := s.rentalRepo.CompleteReturn(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental returned", "rental_id", rental.ID,
		"total_cost_cents", bd.TotalCostCents, "fine_cents", bd.FineCents,
		"additional_days", bd.AdditionalDays)
	return rental, nil
}

func (s *rentalService) GetByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

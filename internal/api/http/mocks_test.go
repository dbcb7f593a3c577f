package http_test

import (
	"context"
	"time"

	"moto-rental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Create(ctx context.Context, motorcycleID, courierID string, plan domain.RentalPlan, startDate, expectedEndDate time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, motorcycleID, courierID, plan, startDate, expectedEndDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Return(ctx context.Context, rentalID string, returnDate time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, returnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

// MockMotorcycleService
type MockMotorcycleService struct {
	mock.Mock
}

func (m *MockMotorcycleService) Create(ctx context.Context, moto *domain.Motorcycle) (*domain.Motorcycle, error) {
	args := m.Called(ctx, moto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleService) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleService) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, plateFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleService) Update(ctx context.Context, id, plate, model string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id, plate, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCourierService
type MockCourierService struct {
	mock.Mock
}

func (m *MockCourierService) Create(ctx context.Context, courier *domain.Courier) (*domain.Courier, error) {
	args := m.Called(ctx, courier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Courier), args.Error(1)
}
func (m *MockCourierService) GetByID(ctx context.Context, id string) (*domain.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Courier), args.Error(1)
}
func (m *MockCourierService) List(ctx context.Context) ([]domain.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Courier), args.Error(1)
}
func (m *MockCourierService) UpdateCNHImage(ctx context.Context, id, imageURL string) (*domain.Courier, error) {
	args := m.Called(ctx, id, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Courier), args.Error(1)
}

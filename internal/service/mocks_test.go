package service_test

import (
	"context"

	"moto-rental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCourierRepo
type MockCourierRepo struct {
	mock.Mock
}

func (m *MockCourierRepo) Create(ctx context.Context, courier *domain.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}
func (m *MockCourierRepo) GetByID(ctx context.Context, id string) (*domain.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Courier), args.Error(1)
}
func (m *MockCourierRepo) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Courier, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Courier), args.Error(1)
}
func (m *MockCourierRepo) GetByCNHNumber(ctx context.Context, cnhNumber string) (*domain.Courier, error) {
	args := m.Called(ctx, cnhNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Courier), args.Error(1)
}
func (m *MockCourierRepo) List(ctx context.Context) ([]domain.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Courier), args.Error(1)
}
func (m *MockCourierRepo) UpdateCNHImage(ctx context.Context, id, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

// MockMotorcycleRepo
type MockMotorcycleRepo struct {
	mock.Mock
}

func (m *MockMotorcycleRepo) Create(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) GetByPlate(ctx context.Context, plate string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, plateFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) Update(ctx context.Context, id, plate, model string) error {
	args := m.Called(ctx, id, plate, model)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListActiveByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error) {
	args := m.Called(ctx, motorcycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CompleteReturn(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishMotorcycleCreated(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}

package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"scooter-rental/internal/domain"
)

// MockScooterService
type MockScooterService struct {
	mock.Mock
}

func (m *MockScooterService) AddScooter(ctx context.Context, id string, pricePerMinute decimal.Decimal) error {
	args := m.Called(ctx, id, pricePerMinute)
	return args.Error(0)
}
func (m *MockScooterService) RemoveScooter(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockScooterService) GetScooter(ctx context.Context, id string) (*domain.Scooter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scooter), args.Error(1)
}
func (m *MockScooterService) ListScooters(ctx context.Context) ([]domain.Scooter, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Scooter), args.Error(1)
}
func (m *MockScooterService) SetRented(ctx context.Context, id string, rented bool) error {
	args := m.Called(ctx, id, rented)
	return args.Error(0)
}

// MockRentalArchive
type MockRentalArchive struct {
	mock.Mock
}

func (m *MockRentalArchive) Add(record *domain.RentalRecord) error {
	args := m.Called(record)
	return args.Error(0)
}
func (m *MockRentalArchive) EndRental(scooterID string, rentEnd time.Time) (*domain.RentalRecord, error) {
	args := m.Called(scooterID, rentEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}
func (m *MockRentalArchive) FindOpen(scooterID string) (*domain.RentalRecord, error) {
	args := m.Called(scooterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}
func (m *MockRentalArchive) List() []*domain.RentalRecord {
	args := m.Called()
	return args.Get(0).([]*domain.RentalRecord)
}

// MockRentalCalculator
type MockRentalCalculator struct {
	mock.Mock
}

func (m *MockRentalCalculator) CalculateRent(record *domain.RentalRecord) (decimal.Decimal, error) {
	args := m.Called(record)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentalCalculator) CalculateIncome(year *int, includeNotCompleted bool) (decimal.Decimal, error) {
	args := m.Called(year, includeNotCompleted)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentalCalculator) ListOpenRentals() []domain.RentalRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.RentalRecord)
}

package service

import (
	"context"

	"github.com/shopspring/decimal"

	"scooter-rental/internal/domain"
)

// ScooterService is the scooter directory: inventory CRUD and the rented flag.
type ScooterService interface {
	AddScooter(ctx context.Context, id string, pricePerMinute decimal.Decimal) error
	RemoveScooter(ctx context.Context, id string) error
	GetScooter(ctx context.Context, id string) (*domain.Scooter, error)
	ListScooters(ctx context.Context) ([]domain.Scooter, error)
	SetRented(ctx context.Context, id string, rented bool) error
}

// RentalCalculatorService bills rentals.
//
// CalculateIncome with includeNotCompleted set closes every open rental in the
// archive at the current time before summing. The closure is permanent: the records
// stay closed and later calls bill them at that end time.
type RentalCalculatorService interface {
	CalculateRent(record *domain.RentalRecord) (decimal.Decimal, error)
	CalculateIncome(year *int, includeNotCompleted bool) (decimal.Decimal, error)
	ListOpenRentals() []domain.RentalRecord
}

type RentalCompany interface {
	Name() string
	StartRent(ctx context.Context, id string) error
	EndRent(ctx context.Context, id string) (decimal.Decimal, error)
	CalculateIncome(ctx context.Context, year *int, includeNotCompleted bool) (decimal.Decimal, error)
}

package repository

import (
	"context"
	"time"

	"scooter-rental/internal/domain"
)

type ScooterRepository interface {
	Create(ctx context.Context, scooter *domain.Scooter) error
	GetByID(ctx context.Context, id string) (*domain.Scooter, error)
	Update(ctx context.Context, scooter *domain.Scooter) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Scooter, error)
}

// RentalArchive owns the rental records. List hands out the live backing slice, so a
// record mutated through it is mutated for every holder of the archive.
type RentalArchive interface {
	Add(record *domain.RentalRecord) error
	EndRental(scooterID string, rentEnd time.Time) (*domain.RentalRecord, error)
	FindOpen(scooterID string) (*domain.RentalRecord, error)
	List() []*domain.RentalRecord
}

package memory

import (
	"time"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/repository"
)

type rentalArchive struct {
	records []*domain.RentalRecord
}

// NewRentalArchive returns an archive seeded with records, kept in the given order.
func NewRentalArchive(records ...*domain.RentalRecord) repository.RentalArchive {
	return &rentalArchive{records: records}
}

func (a *rentalArchive) Add(record *domain.RentalRecord) error {
	for _, rt := range a.records {
		if rt.ScooterID == record.ScooterID && rt.RentStart.Equal(record.RentStart) {
			return domain.ErrDuplicateRental
		}
	}
	a.records = append(a.records, record)
	return nil
}

// EndRental closes the first open record for scooterID. A scooter whose records are
// all closed reports ErrRentalEnded; one with no records at all reports
// ErrScooterNotFound.
func (a *rentalArchive) EndRental(scooterID string, rentEnd time.Time) (*domain.RentalRecord, error) {
	var found *domain.RentalRecord
	seen := false
	for _, rt := range a.records {
		if rt.ScooterID != scooterID {
			continue
		}
		seen = true
		if rt.IsOpen() {
			found = rt
			break
		}
	}
	if !seen {
		return nil, domain.ErrScooterNotFound
	}
	if found == nil {
		return nil, domain.ErrRentalEnded
	}
	if rentEnd.Before(found.RentStart) {
		return nil, domain.ErrInvalidEndTime
	}

	found.Close(rentEnd)
	return found, nil
}

func (a *rentalArchive) FindOpen(scooterID string) (*domain.RentalRecord, error) {
	for _, rt := range a.records {
		if rt.ScooterID == scooterID && rt.IsOpen() {
			return rt, nil
		}
	}
	return nil, domain.ErrRentalNotFound
}

func (a *rentalArchive) List() []*domain.RentalRecord {
	return a.records
}

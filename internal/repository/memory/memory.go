package memory

import "scooter-rental/internal/repository"

// Store groups the in-memory repositories. Nothing here locks; callers that share a
// Store across goroutines serialise access themselves.
type Store struct {
	Scooters repository.ScooterRepository
	Rentals  repository.RentalArchive
}

func NewStore() *Store {
	return &Store{
		Scooters: NewScooterRepository(),
		Rentals:  NewRentalArchive(),
	}
}

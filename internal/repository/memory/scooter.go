package memory

import (
	"context"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository"
)

type scooterRepository struct {
	scooters []*domain.Scooter
}

func NewScooterRepository() repository.ScooterRepository {
	return &scooterRepository{}
}

func (r *scooterRepository) Create(ctx context.Context, scooter *domain.Scooter) error {
	if r.find(scooter.ID) >= 0 {
		return domain.ErrDuplicateScooter
	}
	stored := *scooter
	r.scooters = append(r.scooters, &stored)
	logger.StoreResult("scooters", "create", "scooter_id", scooter.ID)
	return nil
}

func (r *scooterRepository) GetByID(ctx context.Context, id string) (*domain.Scooter, error) {
	i := r.find(id)
	if i < 0 {
		return nil, domain.ErrScooterNotFound
	}
	sc := *r.scooters[i]
	return &sc, nil
}

func (r *scooterRepository) Update(ctx context.Context, scooter *domain.Scooter) error {
	i := r.find(scooter.ID)
	if i < 0 {
		return domain.ErrScooterNotFound
	}
	stored := *scooter
	r.scooters[i] = &stored
	logger.StoreResult("scooters", "update", "scooter_id", scooter.ID)
	return nil
}

func (r *scooterRepository) Delete(ctx context.Context, id string) error {
	i := r.find(id)
	if i < 0 {
		return domain.ErrScooterNotFound
	}
	r.scooters = append(r.scooters[:i], r.scooters[i+1:]...)
	logger.StoreResult("scooters", "delete", "scooter_id", id)
	return nil
}

func (r *scooterRepository) List(ctx context.Context) ([]domain.Scooter, error) {
	scooters := make([]domain.Scooter, 0, len(r.scooters))
	for _, sc := range r.scooters {
		scooters = append(scooters, *sc)
	}
	return scooters, nil
}

func (r *scooterRepository) find(id string) int {
	for i, sc := range r.scooters {
		if sc.ID == id {
			return i
		}
	}
	return -1
}

package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository"
)

type scooterService struct {
	scooterRepo repository.ScooterRepository
}

func NewScooterService(scooterRepo repository.ScooterRepository) ScooterService {
	return &scooterService{scooterRepo: scooterRepo}
}

func (s *scooterService) AddScooter(ctx context.Context, id string, pricePerMinute decimal.Decimal) error {
	if err := domain.ValidateScooterID(id); err != nil {
		return err
	}
	if err := domain.ValidatePrice(pricePerMinute); err != nil {
		return err
	}
	if err := s.scooterRepo.Create(ctx, domain.NewScooter(id, pricePerMinute)); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Scooter added", "scooter_id", id, "price_per_minute", pricePerMinute.String())
	return nil
}

func (s *scooterService) RemoveScooter(ctx context.Context, id string) error {
	if err := domain.ValidateScooterID(id); err != nil {
		return err
	}
	if err := s.scooterRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Scooter removed", "scooter_id", id)
	return nil
}

func (s *scooterService) GetScooter(ctx context.Context, id string) (*domain.Scooter, error) {
	if err := domain.ValidateScooterID(id); err != nil {
		return nil, err
	}
	return s.scooterRepo.GetByID(ctx, id)
}

func (s *scooterService) ListScooters(ctx context.Context) ([]domain.Scooter, error) {
	return s.scooterRepo.List(ctx)
}

func (s *scooterService) SetRented(ctx context.Context, id string, rented bool) error {
	sc, err := s.GetScooter(ctx, id)
	if err != nil {
		return err
	}
	sc.IsRented = rented
	if err := s.scooterRepo.Update(ctx, sc); err != nil {
		return fmt.Errorf("failed to update scooter %s: %w", id, err)
	}
	return nil
}

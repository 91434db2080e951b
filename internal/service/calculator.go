package service

import (
	"time"

	"github.com/shopspring/decimal"

	"scooter-rental/internal/clock"
	"scooter-rental/internal/domain"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository"
	"scooter-rental/internal/utils"
)

type rentalCalculatorService struct {
	archive  repository.RentalArchive
	clock    clock.Clock
	dailyCap decimal.Decimal
}

// NewRentalCalculatorService bills records of archive. The calculator reads the
// archive's live record list on every call and never keeps a copy.
func NewRentalCalculatorService(archive repository.RentalArchive, clk clock.Clock, dailyCap decimal.Decimal) RentalCalculatorService {
	return &rentalCalculatorService{
		archive:  archive,
		clock:    clk,
		dailyCap: dailyCap,
	}
}

func (s *rentalCalculatorService) CalculateRent(record *domain.RentalRecord) (decimal.Decimal, error) {
	if record.RentEnd == nil {
		return decimal.Zero, domain.ErrMissingEndTime
	}
	return utils.CalculateRentalCost(record.RentStart, *record.RentEnd, record.PricePerMinute, s.dailyCap)
}

func (s *rentalCalculatorService) CalculateIncome(year *int, includeNotCompleted bool) (decimal.Decimal, error) {
	income := decimal.Zero
	now := s.clock.Now()

	for _, rt := range s.archive.List() {
		if includeNotCompleted && rt.IsOpen() {
			if now.Before(rt.RentStart) {
				return decimal.Zero, domain.ErrInvalidEndTime
			}
			s.autoClose(rt, now)
		}

		if rt.IsOpen() {
			continue
		}
		if year != nil && rt.RentStart.Year() != *year {
			continue
		}

		cost, err := s.CalculateRent(rt)
		if err != nil {
			return decimal.Zero, err
		}
		income = income.Add(cost)
	}

	return income, nil
}

// ListOpenRentals returns copies of the rentals still in progress.
func (s *rentalCalculatorService) ListOpenRentals() []domain.RentalRecord {
	var open []domain.RentalRecord
	for _, rt := range s.archive.List() {
		if rt.IsOpen() {
			open = append(open, *rt)
		}
	}
	return open
}

// autoClose ends an in-progress rental so it can be billed. The record stays closed.
func (s *rentalCalculatorService) autoClose(rt *domain.RentalRecord, now time.Time) {
	rt.Close(now)
	logger.Info("Open rental closed for income calculation",
		"scooter_id", rt.ScooterID,
		"rent_start", rt.RentStart,
		"rent_end", now)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"scooter-rental/internal/clock"
	"scooter-rental/internal/domain"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository"
)

type rentalCompany struct {
	name       string
	scooterSvc ScooterService
	archive    repository.RentalArchive
	calculator RentalCalculatorService
	clock      clock.Clock
}

func NewRentalCompany(
	name string,
	scooterSvc ScooterService,
	archive repository.RentalArchive,
	calculator RentalCalculatorService,
	clk clock.Clock,
) RentalCompany {
	return &rentalCompany{
		name:       name,
		scooterSvc: scooterSvc,
		archive:    archive,
		calculator: calculator,
		clock:      clk,
	}
}

func (c *rentalCompany) Name() string {
	return c.name
}

func (c *rentalCompany) StartRent(ctx context.Context, id string) error {
	logger.EnterMethod("RentalCompany.StartRent", "scooter_id", id)

	sc, err := c.lookupScooter(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("RentalCompany.StartRent", err, "scooter_id", id)
		return err
	}

	// The archive only rejects an identical start time, so a second open rental
	// for the same scooter is refused here.
	if _, err := c.archive.FindOpen(sc.ID); err == nil {
		logger.ExitMethodWithError("RentalCompany.StartRent", domain.ErrScooterAlreadyRented, "scooter_id", id)
		return domain.ErrScooterAlreadyRented
	}

	record := domain.NewRentalRecord(sc.ID, c.clock.Now(), sc.PricePerMinute)
	if err := c.archive.Add(record); err != nil {
		logger.ExitMethodWithError("RentalCompany.StartRent", err, "scooter_id", id)
		return err
	}

	if err := c.scooterSvc.SetRented(ctx, sc.ID, true); err != nil {
		return fmt.Errorf("failed to mark scooter rented: %w", err)
	}

	logger.InfoContext(ctx, "Rental started",
		"company", c.name,
		"scooter_id", sc.ID,
		"rent_start", record.RentStart,
		"price_per_minute", record.PricePerMinute.String())
	logger.ExitMethod("RentalCompany.StartRent", "scooter_id", id)
	return nil
}

func (c *rentalCompany) EndRent(ctx context.Context, id string) (decimal.Decimal, error) {
	logger.EnterMethod("RentalCompany.EndRent", "scooter_id", id)

	sc, err := c.lookupScooter(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}

	record, err := c.archive.EndRental(sc.ID, c.clock.Now())
	if err != nil {
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}

	if err := c.scooterSvc.SetRented(ctx, sc.ID, false); err != nil {
		return decimal.Zero, fmt.Errorf("failed to mark scooter returned: %w", err)
	}

	cost, err := c.calculator.CalculateRent(record)
	if err != nil {
		logger.ExitMethodWithError("RentalCompany.EndRent", err, "scooter_id", id)
		return decimal.Zero, err
	}

	logger.InfoContext(ctx, "Rental ended",
		"company", c.name,
		"scooter_id", sc.ID,
		"rent_start", record.RentStart,
		"rent_end", *record.RentEnd,
		"cost", cost.String())
	logger.ExitMethod("RentalCompany.EndRent", "scooter_id", id, "cost", cost.String())
	return cost, nil
}

func (c *rentalCompany) CalculateIncome(ctx context.Context, year *int, includeNotCompleted bool) (decimal.Decimal, error) {
	income, err := c.calculator.CalculateIncome(year, includeNotCompleted)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to calculate income", "error", err)
		return decimal.Zero, err
	}
	return income, nil
}

// lookupScooter validates id and resolves it in the directory. Any directory miss is
// reported as ErrScooterNotFound.
func (c *rentalCompany) lookupScooter(ctx context.Context, id string) (*domain.Scooter, error) {
	if err := domain.ValidateScooterID(id); err != nil {
		return nil, err
	}
	sc, err := c.scooterSvc.GetScooter(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrScooterNotFound) {
			return nil, domain.ErrScooterNotFound
		}
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrScooterNotFound
	}
	return sc, nil
}

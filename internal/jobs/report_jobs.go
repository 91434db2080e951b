package jobs

import (
	"context"

	"github.com/shopspring/decimal"

	"scooter-rental/internal/logger"
)

type IncomeReport struct {
	Company string
	Year    int
	Income  decimal.Decimal
}

type FleetReport struct {
	Scooters    int
	Rented      int
	OpenRentals int
}

// ReportIncome logs completed-rental income for the current year.
func (jr *JobRunner) ReportIncome() {
	jr.runWithRecovery("ReportIncome", func() {
		report, err := jr.BuildIncomeReport(context.Background())
		if err != nil {
			logger.Error("Failed to build income report", "error", err)
			return
		}
		logger.Info("Income report",
			"company", report.Company,
			"year", report.Year,
			"income", report.Income.String())
	})
}

// BuildIncomeReport sums closed rentals only. Open rentals are left alone, since
// including them would close them for good.
func (jr *JobRunner) BuildIncomeReport(ctx context.Context) (IncomeReport, error) {
	jr.mu.Lock()
	defer jr.mu.Unlock()

	year := jr.clock.Now().Year()
	income, err := jr.services.Company.CalculateIncome(ctx, &year, false)
	if err != nil {
		return IncomeReport{}, err
	}
	return IncomeReport{
		Company: jr.services.Company.Name(),
		Year:    year,
		Income:  income,
	}, nil
}

// ReportFleet logs fleet size and utilisation.
func (jr *JobRunner) ReportFleet() {
	jr.runWithRecovery("ReportFleet", func() {
		report, err := jr.BuildFleetReport(context.Background())
		if err != nil {
			logger.Error("Failed to build fleet report", "error", err)
			return
		}
		logger.Info("Fleet report",
			"scooters", report.Scooters,
			"rented", report.Rented,
			"open_rentals", report.OpenRentals)
	})
}

func (jr *JobRunner) BuildFleetReport(ctx context.Context) (FleetReport, error) {
	jr.mu.Lock()
	defer jr.mu.Unlock()

	scooters, err := jr.services.Scooter.ListScooters(ctx)
	if err != nil {
		return FleetReport{}, err
	}
	report := FleetReport{
		Scooters:    len(scooters),
		OpenRentals: len(jr.services.Calculator.ListOpenRentals()),
	}
	for _, sc := range scooters {
		if sc.IsRented {
			report.Rented++
		}
	}
	return report, nil
}

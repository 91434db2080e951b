package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"scooter-rental/internal/domain"
)

const day = 24 * time.Hour

// DefaultDailyCap is the most a rental is charged for any single day.
var DefaultDailyCap = decimal.NewFromInt(20)

// RentalDuration is a rental length split into whole days and the whole minutes left
// over. Seconds are dropped.
type RentalDuration struct {
	Days    int64
	Minutes int64
}

// RentalCostBreakdown provides detailed cost breakdown
type RentalCostBreakdown struct {
	FullDays         int64
	RemainderMinutes int64
	DaysCost         decimal.Decimal
	MinutesCost      decimal.Decimal
	TotalCost        decimal.Decimal
}

// SplitDuration computes the whole days and remainder minutes between start and end.
func SplitDuration(start, end time.Time) (RentalDuration, error) {
	d := end.Sub(start)
	if d <= 0 {
		return RentalDuration{}, domain.ErrInvalidDuration
	}

	days := int64(d / day)
	minutes := int64((d % day) / time.Minute)

	return RentalDuration{Days: days, Minutes: minutes}, nil
}

// CalculateRentalCost charges dailyCap for every whole day and the per-minute price
// for the remaining minutes, with the remainder itself capped at dailyCap.
func CalculateRentalCost(start, end time.Time, pricePerMinute, dailyCap decimal.Decimal) (decimal.Decimal, error) {
	breakdown, err := CalculateRentalCostWithBreakdown(start, end, pricePerMinute, dailyCap)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.TotalCost, nil
}

// CalculateRentalCostWithBreakdown is CalculateRentalCost returning the parts of the sum
func CalculateRentalCostWithBreakdown(start, end time.Time, pricePerMinute, dailyCap decimal.Decimal) (RentalCostBreakdown, error) {
	dur, err := SplitDuration(start, end)
	if err != nil {
		return RentalCostBreakdown{}, err
	}

	daysCost := dailyCap.Mul(decimal.NewFromInt(dur.Days))
	minutesCost := calculateMinuteCost(dur.Minutes, pricePerMinute, dailyCap)

	return RentalCostBreakdown{
		FullDays:         dur.Days,
		RemainderMinutes: dur.Minutes,
		DaysCost:         daysCost,
		MinutesCost:      minutesCost,
		TotalCost:        daysCost.Add(minutesCost),
	}, nil
}

// calculateMinuteCost prices a partial day, never exceeding dailyCap
func calculateMinuteCost(minutes int64, pricePerMinute, dailyCap decimal.Decimal) decimal.Decimal {
	cost := pricePerMinute.Mul(decimal.NewFromInt(minutes))
	return decimal.Min(cost, dailyCap)
}

package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scooter-rental/internal/clock"
	"scooter-rental/internal/config"
	"scooter-rental/internal/repository/memory"
	"scooter-rental/internal/service"
)

var now = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

func newRunner(t *testing.T) (*JobRunner, *memory.Store, *clock.MockClock) {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewMockClock(now)
	scooterSvc := service.NewScooterService(store.Scooters)
	calc := service.NewRentalCalculatorService(store.Rentals, clk, decimal.NewFromInt(20))
	company := service.NewRentalCompany("Test", scooterSvc, store.Rentals, calc, clk)

	ctx := context.Background()
	require.NoError(t, scooterSvc.AddScooter(ctx, "1", decimal.RequireFromString("0.1")))
	require.NoError(t, scooterSvc.AddScooter(ctx, "2", decimal.RequireFromString("2")))

	cfg, err := config.Parse([]byte("server:\n  port: 8080\n"))
	require.NoError(t, err)

	services := &Services{Company: company, Scooter: scooterSvc, Calculator: calc}
	return NewJobRunner(services, clk, cfg, &sync.Mutex{}), store, clk
}

func TestBuildIncomeReport(t *testing.T) {
	jr, store, clk := newRunner(t)
	ctx := context.Background()
	company := jr.services.Company

	require.NoError(t, company.StartRent(ctx, "1"))
	clk.Add(50 * time.Minute)
	_, err := company.EndRent(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, company.StartRent(ctx, "2"))
	clk.Add(30 * time.Minute)

	report, err := jr.BuildIncomeReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test", report.Company)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, "5", report.Income.String())

	// The open rental must survive the report.
	records := store.Rentals.List()
	require.Len(t, records, 2)
	assert.True(t, records[1].IsOpen())
}

func TestBuildFleetReport(t *testing.T) {
	jr, store, _ := newRunner(t)
	ctx := context.Background()

	require.NoError(t, jr.services.Company.StartRent(ctx, "2"))

	report, err := jr.BuildFleetReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, FleetReport{Scooters: 2, Rented: 1, OpenRentals: 1}, report)
	assert.True(t, store.Rentals.List()[0].IsOpen())
}

func TestRunAll_DoesNotPanic(t *testing.T) {
	jr, _, _ := newRunner(t)
	assert.NotPanics(t, jr.RunAll)
}

func TestRunWithRecovery(t *testing.T) {
	jr, _, _ := newRunner(t)
	assert.NotPanics(t, func() {
		jr.runWithRecovery("boom", func() { panic("boom") })
	})
}

package scheduler

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scooter-rental/internal/clock"
	"scooter-rental/internal/config"
	"scooter-rental/internal/jobs"
	"scooter-rental/internal/repository/memory"
	"scooter-rental/internal/service"
)

func newJobRunner(t *testing.T, yaml string) *jobs.JobRunner {
	t.Helper()
	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)

	store := memory.NewStore()
	clk := clock.NewRealClock()
	scooterSvc := service.NewScooterService(store.Scooters)
	calc := service.NewRentalCalculatorService(store.Rentals, clk, decimal.NewFromInt(20))
	company := service.NewRentalCompany("Test", scooterSvc, store.Rentals, calc, clk)

	return jobs.NewJobRunner(&jobs.Services{Company: company, Scooter: scooterSvc, Calculator: calc}, clk, cfg, &sync.Mutex{})
}

func TestNewScheduler(t *testing.T) {
	s, err := NewScheduler(newJobRunner(t, "server:\n  port: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Entries())

	s.Start()
	s.Stop()
}

func TestNewScheduler_InvalidCron(t *testing.T) {
	_, err := NewScheduler(newJobRunner(t, "server:\n  port: 8080\nscheduler:\n  report_fleet: \"not a cron\"\n"))
	assert.ErrorContains(t, err, "ReportFleet")
}

package jobs

import (
	"sync"

	"scooter-rental/internal/clock"
	"scooter-rental/internal/config"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	clock    clock.Clock
	config   *config.Config
	mu       sync.Locker
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Company    service.RentalCompany
	Scooter    service.ScooterService
	Calculator service.RentalCalculatorService
}

// NewJobRunner creates a job runner. mu is the lock that serialises every caller
// of the rental company, shared with the HTTP API.
func NewJobRunner(services *Services, clk clock.Clock, cfg *config.Config, mu sync.Locker) *JobRunner {
	return &JobRunner{
		services: services,
		clock:    clk,
		config:   cfg,
		mu:       mu,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every report once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.ReportIncome()
	jr.ReportFleet()
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	grpcapi "scooter-rental/internal/api/grpc"
	httpapi "scooter-rental/internal/api/http"
	"scooter-rental/internal/clock"
	"scooter-rental/internal/config"
	"scooter-rental/internal/jobs"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository/memory"
	"scooter-rental/internal/scheduler"
	"scooter-rental/internal/security"
	"scooter-rental/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting scooter rental server...", "company", cfg.Company.Name, "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Pricing configuration", "daily_cap", cfg.GetDailyCap().String())

	// Initialize repositories and services
	store := memory.NewStore()
	clk := clock.NewRealClock()
	scooterSvc := service.NewScooterService(store.Scooters)
	calculator := service.NewRentalCalculatorService(store.Rentals, clk, cfg.GetDailyCap())
	company := service.NewRentalCompany(cfg.Company.Name, scooterSvc, store.Rentals, calculator, clk)

	if err := seedFleet(context.Background(), scooterSvc, cfg.Fleet); err != nil {
		logger.Error("Failed to seed fleet", "error", err)
		log.Fatalf("Failed to seed fleet: %v", err)
	}

	// One lock for every caller of the company: HTTP handlers and cron jobs
	var mu sync.Mutex

	var tokenManager security.TokenManager
	if cfg.AuthEnabled() {
		tokenManager = security.NewTokenManager(cfg.JWT.Secret)
	}

	handler := httpapi.NewHandler(company, scooterSvc, calculator)
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(handler, tokenManager, &mu),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Scheduler
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Company:    company,
		Scooter:    scooterSvc,
		Calculator: calculator,
	}, clk, cfg, &mu)
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		logger.Error("Failed to create scheduler", "error", err)
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// gRPC health server
	var healthServer *grpcapi.HealthServer
	if addr := cfg.GetGRPCAddress(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Error("Failed to listen", "error", err, "address", addr)
			log.Fatalf("Failed to listen: %v", err)
		}
		healthServer = grpcapi.NewHealthServer()
		go func() {
			if err := healthServer.Serve(lis); err != nil {
				logger.Error("gRPC health server error", "error", err)
			}
		}()
	}

	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	cronScheduler.Start()
	if healthServer != nil {
		healthServer.SetServing(true)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	if healthServer != nil {
		healthServer.SetServing(false)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	cronScheduler.Stop()
	if healthServer != nil {
		healthServer.Stop()
	}
	logger.Info("Server stopped. Goodbye!")
}

// seedFleet registers the scooters listed in the config file.
func seedFleet(ctx context.Context, scooterSvc service.ScooterService, fleet []config.FleetScooter) error {
	for _, sc := range fleet {
		price, err := decimal.NewFromString(sc.PricePerMinute)
		if err != nil {
			return err
		}
		if err := scooterSvc.AddScooter(ctx, sc.ID, price); err != nil {
			return err
		}
	}
	logger.Info("Fleet seeded", "scooters", len(fleet))
	return nil
}

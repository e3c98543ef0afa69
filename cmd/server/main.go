package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/investdash/investment-dashboard-backend/internal/api"
	"github.com/investdash/investment-dashboard-backend/internal/config"
	"github.com/investdash/investment-dashboard-backend/internal/database"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
	"github.com/investdash/investment-dashboard-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	fundRepo := repository.NewFundRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	navRepo := repository.NewNAVRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	overlapRepo := repository.NewOverlapRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	userService := service.NewUserService(userRepo)
	fundService := service.NewFundService(fundRepo, navRepo)
	investmentService := service.NewInvestmentService(investmentRepo, userRepo, fundRepo)
	valuationService := service.NewValuationService(investmentRepo, fundRepo)
	performanceService := service.NewPerformanceService(investmentRepo, navRepo)
	allocationService := service.NewAllocationService(investmentRepo, allocationRepo, fundRepo)
	overlapService := service.NewOverlapService(investmentRepo, overlapRepo, fundRepo)
	navSyncService := service.NewNavSyncService(fundRepo, navRepo)
	dashboardService := service.NewDashboardService(
		userRepo,
		valuationService,
		performanceService,
		allocationService,
		overlapService,
	)

	// Nightly NAV sync keeps the fund table's latest-NAV column aligned with
	// the newest history observations.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("30 0 * * *", navSyncService.Run); err != nil {
		log.Fatalf("Failed to schedule NAV sync: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		User:       userService,
		Fund:       fundService,
		Investment: investmentService,
		Dashboard:  dashboardService,
		Perform:    performanceService,
		Allocation: allocationService,
		Overlap:    overlapService,
		System:     systemService,
		NavSync:    navSyncService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

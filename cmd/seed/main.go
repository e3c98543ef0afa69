// Seed command: applies migrations and loads the development dataset into
// the configured database. Safe to run repeatedly; it skips a populated
// database.
package main

import (
	"log"

	"github.com/investdash/investment-dashboard-backend/internal/config"
	"github.com/investdash/investment-dashboard-backend/internal/database"
	"github.com/investdash/investment-dashboard-backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Database seeded")
}

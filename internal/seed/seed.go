// Package seed populates an empty database with a development dataset:
// one user holding seven funds, allocation tables across all three
// dimensions, precomputed overlap records and a generated daily NAV history.
package seed

import (
	"database/sql"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

type fundSpec struct {
	name     string
	fundType string
	isin     string
	nav      float64
}

type investmentSpec struct {
	fundIdx int
	date    string
	amount  float64
	nav     float64
}

type allocationSpec struct {
	fundIdx    int
	dimension  model.AllocationDimension
	category   string
	percentage float64
}

type overlapSpec struct {
	fundIdx1          int
	fundIdx2          int
	overlapPercentage float64
	overlappingStocks int
}

var funds = []fundSpec{
	{"ICICI Prudential Bluechip Fund", "Large Cap", "INF109K016L0", 112.50},
	{"HDFC Top 100 Fund", "Large Cap", "INF179K01YV8", 110.20},
	{"SBI Bluechip Fund", "Large Cap", "INF200K01QX4", 111.00},
	{"Axis Bluechip Fund", "Large Cap", "INF846K01DP8", 95.00},
	{"Mirae Asset Large Cap Fund", "Large Cap", "INF769K01AX2", 113.00},
	{"ICICI Prudential Midcap Fund", "Mid Cap", "INF109K01BL2", 119.00},
	{"Axis Flexi Cap Fund", "Flexi Cap", "INF846K01CH9", 95.00},
	{"Motilal Large Cap Fund - Direct Plan", "Large Cap", "INF247L01AJ8", 105.00},
	{"Nippon Large Cap Fund - Direct Plan", "Large Cap", "INF204K01CP3", 108.00},
	{"HDFC Large Cap Fund", "Large Cap", "INF179K01CQ2", 106.00},
}

var investments = []investmentSpec{
	{0, "2023-01-10", 1000000.0, 100.0},
	{1, "2022-12-05", 800000.0, 100.0},
	{2, "2023-02-15", 1200000.0, 100.0},
	{3, "2022-11-20", 950000.0, 100.0},
	{4, "2023-03-01", 1100000.0, 100.0},
	{5, "2023-02-01", 600000.0, 100.0},
	{6, "2023-01-15", 700000.0, 100.0},
}

var allocations = []allocationSpec{
	{0, model.DimensionSector, "Technology", 38.0},
	{0, model.DimensionSector, "Financial", 37.0},
	{0, model.DimensionSector, "Energy", 25.0},
	{1, model.DimensionSector, "Financial", 80.0},
	{1, model.DimensionSector, "Energy", 20.0},
	{2, model.DimensionSector, "Technology", 40.0},
	{2, model.DimensionSector, "Financial", 21.0},
	{2, model.DimensionSector, "Energy", 27.0},
	{2, model.DimensionSector, "Industrials", 12.0},
	{3, model.DimensionSector, "Technology", 50.0},
	{3, model.DimensionSector, "Financial", 32.0},
	{3, model.DimensionSector, "Energy", 18.0},
	{4, model.DimensionSector, "Technology", 42.0},
	{4, model.DimensionSector, "Financial", 34.0},
	{4, model.DimensionSector, "Energy", 24.0},
	{5, model.DimensionSector, "Technology", 30.0},
	{5, model.DimensionSector, "Financial", 25.0},
	{5, model.DimensionSector, "Healthcare", 20.0},
	{5, model.DimensionSector, "Consumer Goods", 15.0},
	{5, model.DimensionSector, "Industrials", 10.0},
	{6, model.DimensionSector, "Technology", 35.0},
	{6, model.DimensionSector, "Financial", 25.0},
	{6, model.DimensionSector, "Healthcare", 20.0},
	{6, model.DimensionSector, "Consumer Goods", 10.0},
	{6, model.DimensionSector, "Energy", 10.0},
	{7, model.DimensionSector, "Technology", 45.0},
	{7, model.DimensionSector, "Financial", 35.0},
	{7, model.DimensionSector, "Energy", 20.0},
	{8, model.DimensionSector, "Technology", 40.0},
	{8, model.DimensionSector, "Financial", 30.0},
	{8, model.DimensionSector, "Energy", 20.0},
	{8, model.DimensionSector, "Consumer Goods", 10.0},
	{9, model.DimensionSector, "Financial", 60.0},
	{9, model.DimensionSector, "Energy", 25.0},
	{9, model.DimensionSector, "Technology", 15.0},

	{0, model.DimensionStock, "Reliance Industries", 25.0},
	{0, model.DimensionStock, "HDFC Bank", 22.0},
	{0, model.DimensionStock, "Tata Consultancy Services", 20.0},
	{0, model.DimensionStock, "Infosys", 18.0},
	{0, model.DimensionStock, "ICICI Bank", 15.0},
	{1, model.DimensionStock, "HDFC Bank", 28.0},
	{1, model.DimensionStock, "ICICI Bank", 24.0},
	{1, model.DimensionStock, "Reliance Industries", 20.0},
	{1, model.DimensionStock, "Kotak Mahindra Bank", 18.0},
	{1, model.DimensionStock, "Bajaj Finance", 10.0},
	{2, model.DimensionStock, "Reliance Industries", 27.0},
	{2, model.DimensionStock, "Tata Consultancy Services", 23.0},
	{2, model.DimensionStock, "HDFC Bank", 21.0},
	{2, model.DimensionStock, "Infosys", 17.0},
	{2, model.DimensionStock, "Larsen & Toubro", 12.0},
	{3, model.DimensionStock, "Tata Consultancy Services", 26.0},
	{3, model.DimensionStock, "Infosys", 24.0},
	{3, model.DimensionStock, "HDFC Bank", 22.0},
	{3, model.DimensionStock, "Reliance Industries", 18.0},
	{3, model.DimensionStock, "State Bank of India", 10.0},
	{4, model.DimensionStock, "Reliance Industries", 24.0},
	{4, model.DimensionStock, "HDFC Bank", 23.0},
	{4, model.DimensionStock, "Tata Consultancy Services", 22.0},
	{4, model.DimensionStock, "Infosys", 20.0},
	{4, model.DimensionStock, "ICICI Bank", 11.0},

	{0, model.DimensionMarketCap, "Large Cap", 90.0},
	{0, model.DimensionMarketCap, "Mid Cap", 10.0},
	{1, model.DimensionMarketCap, "Large Cap", 95.0},
	{1, model.DimensionMarketCap, "Mid Cap", 5.0},
	{2, model.DimensionMarketCap, "Large Cap", 88.0},
	{2, model.DimensionMarketCap, "Mid Cap", 12.0},
	{3, model.DimensionMarketCap, "Large Cap", 92.0},
	{3, model.DimensionMarketCap, "Mid Cap", 8.0},
	{4, model.DimensionMarketCap, "Large Cap", 85.0},
	{4, model.DimensionMarketCap, "Mid Cap", 15.0},
	{5, model.DimensionMarketCap, "Mid Cap", 80.0},
	{5, model.DimensionMarketCap, "Small Cap", 20.0},
	{6, model.DimensionMarketCap, "Large Cap", 55.0},
	{6, model.DimensionMarketCap, "Mid Cap", 30.0},
	{6, model.DimensionMarketCap, "Small Cap", 15.0},
}

var overlaps = []overlapSpec{
	{0, 1, 67.0, 3},
	{0, 2, 87.0, 4},
	{0, 3, 88.0, 4},
	{0, 4, 100.0, 5},
	{1, 2, 48.0, 2},
	{1, 3, 44.0, 2},
	{1, 4, 65.0, 3},
	{2, 3, 89.0, 4},
	{2, 4, 89.0, 4},
	{3, 4, 90.0, 4},
	{7, 8, 80.0, 3},
}

// Run seeds the database through the repository layer. It is idempotent in
// the simplest way: when any user already exists, nothing is written.
func Run(db *sql.DB) error {
	userRepo := repository.NewUserRepository(db)
	fundRepo := repository.NewFundRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	navRepo := repository.NewNAVRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	overlapRepo := repository.NewOverlapRepository(db)

	existing, err := userRepo.GetUsers()
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	user, err := userRepo.CreateUser("Yashna", "yashna@example.com")
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fundIDs := make([]int64, len(funds))
	for i, f := range funds {
		created, err := fundRepo.CreateFund(f.name, f.fundType, f.isin, f.nav)
		if err != nil {
			return fmt.Errorf("failed to create fund %q: %w", f.name, err)
		}
		fundIDs[i] = created.ID
	}

	for _, inv := range investments {
		date, err := time.Parse("2006-01-02", inv.date)
		if err != nil {
			return fmt.Errorf("bad investment date %q: %w", inv.date, err)
		}
		units := inv.amount / inv.nav
		if _, err := investmentRepo.CreateInvestment(user.ID, fundIDs[inv.fundIdx], date, inv.amount, inv.nav, units); err != nil {
			return fmt.Errorf("failed to create investment: %w", err)
		}
	}

	for _, a := range allocations {
		if err := allocationRepo.CreateEntry(fundIDs[a.fundIdx], a.dimension, a.category, a.percentage); err != nil {
			return fmt.Errorf("failed to create allocation entry: %w", err)
		}
	}

	for _, o := range overlaps {
		if err := overlapRepo.CreateRecord(fundIDs[o.fundIdx1], fundIDs[o.fundIdx2], o.overlapPercentage, o.overlappingStocks); err != nil {
			return fmt.Errorf("failed to create overlap record: %w", err)
		}
	}

	if err := seedNAVHistory(navRepo, fundIDs); err != nil {
		return err
	}

	return nil
}

// seedNAVHistory generates a deterministic daily random walk per fund from
// 2023-01-01 to today: roughly 5-15% annual growth with 0.5% daily
// volatility, floored so no single day drops more than 5%.
func seedNAVHistory(navRepo *repository.NAVRepository, fundIDs []int64) error {
	rng := rand.New(rand.NewSource(42))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, fundID := range fundIDs {
		annualGrowth := 0.10 + (rng.Float64()*0.10 - 0.05)
		const dailyVolatility = 0.005

		nav := 100.0
		for date := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC); !date.After(today); date = date.AddDate(0, 0, 1) {
			dailyChange := rng.NormFloat64()*dailyVolatility + annualGrowth/365
			nav = math.Max(nav*(1+dailyChange), nav*0.95)

			if err := navRepo.UpsertNAVPoint(fundID, date, math.Round(nav*100)/100); err != nil {
				return fmt.Errorf("failed to insert NAV point: %w", err)
			}
		}
	}
	return nil
}

package model

import "time"

// Fund represents a mutual fund from the database.
// Nav holds the latest known NAV for the fund; it is kept consistent with the
// newest nav_history row by the nav sync job and by NAV-point ingestion.
type Fund struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FundType  string    `json:"fund_type"`
	Isin      string    `json:"isin"`
	Nav       float64   `json:"nav"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NAVPoint represents one historical NAV observation for a fund.
// At most one point exists per (fund, calendar date); points are append-only.
type NAVPoint struct {
	ID     string    `json:"id"`
	FundID int64     `json:"fund_id"`
	Date   time.Time `json:"date"`
	Nav    float64   `json:"nav"`
}

// AllocationDimension identifies which allocation table slice an entry belongs to.
type AllocationDimension string

// Allocation dimensions supported by the fund_allocation table.
const (
	DimensionSector    AllocationDimension = "sector"
	DimensionStock     AllocationDimension = "stock"
	DimensionMarketCap AllocationDimension = "market_cap"
)

// Valid reports whether d is one of the supported allocation dimensions.
func (d AllocationDimension) Valid() bool {
	switch d {
	case DimensionSector, DimensionStock, DimensionMarketCap:
		return true
	}
	return false
}

// AllocationEntry represents one row of a fund's allocation table for a given
// dimension. Percentages for a (fund, dimension) pair should sum to roughly
// 100, but that is not enforced here.
type AllocationEntry struct {
	ID         string              `json:"id"`
	FundID     int64               `json:"fund_id"`
	Dimension  AllocationDimension `json:"dimension"`
	Category   string              `json:"category"`
	Percentage float64             `json:"percentage"`
}

// OverlapRecord represents the precomputed holding overlap between two funds.
// Exactly one record exists per unordered fund pair; the stored order of the
// two ids is arbitrary and lookups must match either direction.
type OverlapRecord struct {
	ID                string  `json:"id"`
	FundID1           int64   `json:"fund_id_1"`
	FundID2           int64   `json:"fund_id_2"`
	OverlapPercentage float64 `json:"overlap_percentage"`
	OverlappingStocks int     `json:"overlapping_stocks"`
}

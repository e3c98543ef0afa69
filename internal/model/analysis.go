package model

// FundPerformance describes the return of a single lot relative to its
// purchase NAV. When a user holds no investments the sentinel value
// {ID: 0, Name: "N/A", ReturnPercentage: 0} is returned instead; callers must
// treat it as "no data" rather than a valid extreme.
type FundPerformance struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	ReturnPercentage float64 `json:"return_percentage"`
}

// PerformancePoint is one sampled point of a portfolio value curve.
// Date is a short human-readable label such as "15 Jan".
type PerformancePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// CategoryAllocation is one category slice of a user's weighted aggregate
// allocation for a dimension, e.g. the "Technology" share of a portfolio.
type CategoryAllocation struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// OverlapDetail is an OverlapRecord annotated with fund display names.
// Names fall back to "Unknown" when a fund id no longer resolves.
type OverlapDetail struct {
	FundID1           int64   `json:"fund_id_1"`
	FundID2           int64   `json:"fund_id_2"`
	FundName1         string  `json:"fund_name_1"`
	FundName2         string  `json:"fund_name_2"`
	OverlapPercentage float64 `json:"overlap_percentage"`
	OverlappingStocks int     `json:"overlapping_stocks"`
}

// Dashboard aggregates the analytics shown on the investment dashboard for a
// single user.
type Dashboard struct {
	UserName               string               `json:"user_name"`
	CurrentInvestmentValue float64              `json:"current_investment_value"`
	InitialInvestmentValue float64              `json:"initial_investment_value"`
	BestPerformingFund     FundPerformance      `json:"best_performing_scheme"`
	WorstPerformingFund    FundPerformance      `json:"worst_performing_scheme"`
	PerformanceData        []PerformancePoint   `json:"performance_data"`
	SectorAllocation       []CategoryAllocation `json:"sector_allocation"`
	FundOverlap            []OverlapDetail      `json:"fund_overlap"`
}

// VersionInfo contains version information for the application.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	DbVersion  string `json:"db_version"`
}

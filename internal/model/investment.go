package model

import "time"

// Investment represents one discrete purchase of a fund by a user (a lot).
// Units is derived as Amount / NavAtInvestment at write time and is only
// recomputed when Amount or NavAtInvestment change.
type Investment struct {
	ID              string    `json:"id"`
	UserID          int64     `json:"user_id"`
	FundID          int64     `json:"fund_id"`
	InvestmentDate  time.Time `json:"investment_date"`
	Amount          float64   `json:"amount"`
	NavAtInvestment float64   `json:"nav_at_investment"`
	Units           float64   `json:"units"`
	CreatedAt       time.Time `json:"created_at"`
}

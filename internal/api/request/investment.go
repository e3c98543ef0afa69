package request

// InvestmentRequest represents the request body for creating or updating an
// investment (lot). Units are derived server-side and never accepted from
// the client.
type InvestmentRequest struct {
	UserID          int64   `json:"user_id"`
	FundID          int64   `json:"fund_id"`
	InvestmentDate  string  `json:"investment_date"`
	Amount          float64 `json:"amount"`
	NavAtInvestment float64 `json:"nav_at_investment"`
}

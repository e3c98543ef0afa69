package request

// FundRequest represents the request body for creating or updating a fund
type FundRequest struct {
	Name     string  `json:"name"`
	FundType string  `json:"fund_type"`
	Isin     string  `json:"isin"`
	Nav      float64 `json:"nav"`
}

// NAVPointRequest represents the request body for ingesting one NAV observation
type NAVPointRequest struct {
	Date string  `json:"date"`
	Nav  float64 `json:"nav"`
}

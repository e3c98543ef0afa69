package validation

import (
	"github.com/investdash/investment-dashboard-backend/internal/api/request"
)

// ValidateInvestmentBody checks an investment create/update request body.
// The positive-NAV rule here is what keeps a zero purchase NAV out of the
// units derivation downstream.
func ValidateInvestmentBody(req request.InvestmentRequest) error {
	fields := map[string]string{}

	if req.UserID <= 0 {
		fields["user_id"] = "user_id is required"
	}
	if req.FundID <= 0 {
		fields["fund_id"] = "fund_id is required"
	}
	if req.InvestmentDate == "" {
		fields["investment_date"] = "investment_date is required"
	} else if _, err := ParseDate(req.InvestmentDate); err != nil {
		fields["investment_date"] = "investment_date must be YYYY-MM-DD"
	}
	if req.Amount <= 0 {
		fields["amount"] = "amount must be positive"
	}
	if req.NavAtInvestment <= 0 {
		fields["nav_at_investment"] = "nav_at_investment must be positive"
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

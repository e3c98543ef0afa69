package validation

import (
	"strings"

	"github.com/investdash/investment-dashboard-backend/internal/api/request"
)

// ValidateFundBody checks a fund create/update request body.
func ValidateFundBody(req request.FundRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.FundType) == "" {
		fields["fund_type"] = "fund_type is required"
	}
	if len(req.Isin) != 12 {
		fields["isin"] = "isin must be 12 characters"
	}
	if req.Nav <= 0 {
		fields["nav"] = "nav must be positive"
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// ValidateNAVPoint checks a NAV-point ingestion request body.
func ValidateNAVPoint(req request.NAVPointRequest) error {
	fields := map[string]string{}

	if req.Date == "" {
		fields["date"] = "date is required"
	} else if _, err := ParseDate(req.Date); err != nil {
		fields["date"] = "date must be YYYY-MM-DD"
	}
	if req.Nav <= 0 {
		fields["nav"] = "nav must be positive"
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

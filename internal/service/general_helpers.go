package service

import (
	"math"

	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// RoundingPrecision is the multiplier used to round monetary values and
// percentages to two decimal places.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places.
// Used throughout the service layer so monetary values and percentages are
// presented consistently in API responses.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// distinctFundIDs returns the distinct fund ids across a user's lots,
// in order of first appearance.
func distinctFundIDs(investments []model.Investment) []int64 {
	seen := make(map[int64]bool, len(investments))
	ids := make([]int64, 0, len(investments))
	for _, inv := range investments {
		if !seen[inv.FundID] {
			seen[inv.FundID] = true
			ids = append(ids, inv.FundID)
		}
	}
	return ids
}

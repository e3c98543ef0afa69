package service

import (
	"sort"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// AllocationService computes a user's weighted aggregate allocation across
// the funds they hold. The same algorithm serves every dimension (sector,
// stock, market cap); only the allocation table slice differs.
type AllocationService struct {
	investmentRepo *repository.InvestmentRepository
	allocationRepo *repository.AllocationRepository
	fundRepo       *repository.FundRepository
}

// NewAllocationService creates a new AllocationService with the provided repository dependencies.
func NewAllocationService(
	investmentRepo *repository.InvestmentRepository,
	allocationRepo *repository.AllocationRepository,
	fundRepo *repository.FundRepository,
) *AllocationService {
	return &AllocationService{
		investmentRepo: investmentRepo,
		allocationRepo: allocationRepo,
		fundRepo:       fundRepo,
	}
}

// Aggregate computes the user's value-weighted allocation for one dimension.
//
// Each held fund is weighted by its current value (units times latest NAV,
// summed over the user's lots in that fund) relative to the whole portfolio.
// Every allocation row of a held fund then contributes
// weight * percentage/100 * totalValue to its category; categories shared by
// several funds accumulate. The result is sorted by amount descending.
//
// A user holding nothing, or a portfolio whose total value is zero, yields an
// empty slice; the zero total is guarded before any division. Per-fund
// percentage sums that are not exactly 100 pass through unchanged.
func (s *AllocationService) Aggregate(userID int64, dimension model.AllocationDimension) ([]model.CategoryAllocation, error) {
	if !dimension.Valid() {
		return nil, apperrors.ErrInvalidDimension
	}

	investments, err := s.investmentRepo.GetUserInvestments(userID)
	if err != nil {
		return nil, err
	}
	if len(investments) == 0 {
		return []model.CategoryAllocation{}, nil
	}

	fundIDs := distinctFundIDs(investments)

	navs, err := s.fundRepo.GetLatestNavs(fundIDs)
	if err != nil {
		return nil, err
	}

	valueByFund := make(map[int64]float64, len(fundIDs))
	var totalValue float64
	for _, inv := range investments {
		value := inv.Units * navs[inv.FundID]
		valueByFund[inv.FundID] += value
		totalValue += value
	}
	if totalValue == 0 {
		return []model.CategoryAllocation{}, nil
	}

	entries, err := s.allocationRepo.GetEntries(fundIDs, dimension)
	if err != nil {
		return nil, err
	}

	// Accumulate contributed amounts per category, keeping first-appearance
	// order so equal amounts sort stably.
	amountByCategory := make(map[string]float64, len(entries))
	categories := make([]string, 0, len(entries))
	for _, entry := range entries {
		weight := valueByFund[entry.FundID] / totalValue
		amount := weight * (entry.Percentage / 100) * totalValue

		if _, ok := amountByCategory[entry.Category]; !ok {
			categories = append(categories, entry.Category)
		}
		amountByCategory[entry.Category] += amount
	}

	result := make([]model.CategoryAllocation, 0, len(categories))
	for _, category := range categories {
		amount := amountByCategory[category]
		result = append(result, model.CategoryAllocation{
			Category:   category,
			Amount:     round(amount),
			Percentage: round(amount / totalValue * 100),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})

	return result, nil
}

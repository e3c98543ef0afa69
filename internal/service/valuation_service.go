package service

import (
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// ValuationService computes portfolio-level valuations from a user's lots and
// the latest NAV per fund. Every method is a pure read over current storage
// contents; the service holds no state of its own.
type ValuationService struct {
	investmentRepo *repository.InvestmentRepository
	fundRepo       *repository.FundRepository
}

// NewValuationService creates a new ValuationService with the provided repository dependencies.
func NewValuationService(investmentRepo *repository.InvestmentRepository, fundRepo *repository.FundRepository) *ValuationService {
	return &ValuationService{
		investmentRepo: investmentRepo,
		fundRepo:       fundRepo,
	}
}

// InvestmentSummary computes the current and initial value of a user's
// portfolio. Initial value is the sum of invested amounts; current value is
// the sum of units times the latest NAV per fund. A user with no lots gets
// (0, 0), which is "no data" rather than an error.
func (s *ValuationService) InvestmentSummary(userID int64) (currentValue, initialValue float64, err error) {
	investments, err := s.investmentRepo.GetUserInvestments(userID)
	if err != nil {
		return 0, 0, err
	}
	if len(investments) == 0 {
		return 0, 0, nil
	}

	navs, err := s.fundRepo.GetLatestNavs(distinctFundIDs(investments))
	if err != nil {
		return 0, 0, err
	}

	for _, inv := range investments {
		initialValue += inv.Amount
		currentValue += inv.Units * navs[inv.FundID]
	}

	return round(currentValue), round(initialValue), nil
}

// sentinelPerformance is returned for both extremes when a user has no lots.
// Callers must treat it as "no data", not as a valid extreme.
func sentinelPerformance() model.FundPerformance {
	return model.FundPerformance{ID: 0, Name: "N/A", ReturnPercentage: 0.0}
}

// PerformanceExtremes returns the best and worst performing lots of a user's
// portfolio, measured as percentage return of the latest NAV over the
// purchase NAV. Each lot is evaluated independently: a fund bought twice at
// different NAVs can surface as both best and worst.
func (s *ValuationService) PerformanceExtremes(userID int64) (best, worst model.FundPerformance, err error) {
	investments, err := s.investmentRepo.GetUserInvestments(userID)
	if err != nil {
		return model.FundPerformance{}, model.FundPerformance{}, err
	}
	if len(investments) == 0 {
		return sentinelPerformance(), sentinelPerformance(), nil
	}

	fundIDs := distinctFundIDs(investments)

	navs, err := s.fundRepo.GetLatestNavs(fundIDs)
	if err != nil {
		return model.FundPerformance{}, model.FundPerformance{}, err
	}
	names, err := s.fundRepo.GetFundNames(fundIDs)
	if err != nil {
		return model.FundPerformance{}, model.FundPerformance{}, err
	}

	first := true
	var bestReturn, worstReturn float64

	for _, inv := range investments {
		returnPct := (navs[inv.FundID] - inv.NavAtInvestment) / inv.NavAtInvestment * 100

		name, ok := names[inv.FundID]
		if !ok {
			name = "Unknown"
		}
		performance := model.FundPerformance{
			ID:               inv.FundID,
			Name:             name,
			ReturnPercentage: round(returnPct),
		}

		if first || returnPct > bestReturn {
			best = performance
			bestReturn = returnPct
		}
		if first || returnPct < worstReturn {
			worst = performance
			worstReturn = returnPct
		}
		first = false
	}

	return best, worst, nil
}

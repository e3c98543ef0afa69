package service

import (
	"time"

	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// PerformanceService produces the downsampled portfolio value curve for a
// user. It materializes a per-date portfolio value for every observed NAV
// date in the lookback window and then applies the period's sampling policy.
type PerformanceService struct {
	investmentRepo *repository.InvestmentRepository
	navRepo        *repository.NAVRepository

	// Now returns the reference "today" for window calculations.
	// Overridable in tests to freeze the dataset.
	Now func() time.Time
}

// NewPerformanceService creates a new PerformanceService with the provided repository dependencies.
func NewPerformanceService(investmentRepo *repository.InvestmentRepository, navRepo *repository.NAVRepository) *PerformanceService {
	return &PerformanceService{
		investmentRepo: investmentRepo,
		navRepo:        navRepo,
		Now:            time.Now,
	}
}

// HistoricalPerformance computes the (label, value) series for a user's
// portfolio over the requested period.
//
// The candidate date set is every distinct date with any NAV observation in
// [today - window, today]. For each of those dates the portfolio value is the
// sum over lots purchased on or before the date of units times that day's
// NAV; a lot contributes nothing before its own purchase date, and a fund
// without an observation that day contributes nothing for that day.
//
// A window with NAV data but no active lots yields zero-valued points, not an
// empty series. An empty series is returned only when the window has no NAV
// data at all, which is the defined "no data" signal.
func (s *PerformanceService) HistoricalPerformance(userID int64, period Period) ([]model.PerformancePoint, error) {
	policy, err := policyForPeriod(period)
	if err != nil {
		return nil, err
	}

	today := truncateDay(s.Now().UTC())
	startDate := today.AddDate(0, 0, -policy.windowDays)

	dates, err := s.navRepo.GetObservedDates(startDate, today)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return []model.PerformancePoint{}, nil
	}

	investments, err := s.investmentRepo.GetUserInvestments(userID)
	if err != nil {
		return nil, err
	}

	history, err := s.navRepo.GetNAVHistory(distinctFundIDs(investments), startDate, today)
	if err != nil {
		return nil, err
	}

	// Index NAVs by fund and date for the valuation loop.
	navByFundDate := make(map[int64]map[string]float64, len(history))
	for fundID, points := range history {
		byDate := make(map[string]float64, len(points))
		for _, p := range points {
			byDate[repository.FormatDate(p.Date)] = p.Nav
		}
		navByFundDate[fundID] = byDate
	}

	observations := make([]observation, len(dates))
	for i, date := range dates {
		var value float64
		dateKey := repository.FormatDate(date)
		for _, inv := range investments {
			if inv.InvestmentDate.After(date) {
				continue
			}
			if nav, ok := navByFundDate[inv.FundID][dateKey]; ok {
				value += inv.Units * nav
			}
		}
		observations[i] = observation{date: date, value: value}
	}

	return samplePoints(observations, policy), nil
}

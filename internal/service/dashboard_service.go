package service

import (
	"golang.org/x/sync/errgroup"

	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// DashboardService aggregates the five dashboard analytics for a user.
// The underlying computations are independent read-only queries, so they run
// concurrently; each goroutine writes a distinct field of the result.
type DashboardService struct {
	userRepo           *repository.UserRepository
	valuationService   *ValuationService
	performanceService *PerformanceService
	allocationService  *AllocationService
	overlapService     *OverlapService
}

// NewDashboardService creates a new DashboardService with the provided dependencies.
func NewDashboardService(
	userRepo *repository.UserRepository,
	valuationService *ValuationService,
	performanceService *PerformanceService,
	allocationService *AllocationService,
	overlapService *OverlapService,
) *DashboardService {
	return &DashboardService{
		userRepo:           userRepo,
		valuationService:   valuationService,
		performanceService: performanceService,
		allocationService:  allocationService,
		overlapService:     overlapService,
	}
}

// GetDashboard computes the dashboard summary for a user: current and initial
// value, best/worst performers, the 1M performance curve, sector allocation
// and fund overlaps. Returns apperrors.ErrUserNotFound when the user does not
// exist; empty portfolios produce the defined zero/sentinel/empty results.
func (s *DashboardService) GetDashboard(userID int64) (model.Dashboard, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return model.Dashboard{}, err
	}

	dashboard := model.Dashboard{UserName: user.Name}

	var g errgroup.Group

	g.Go(func() error {
		current, initial, err := s.valuationService.InvestmentSummary(userID)
		if err != nil {
			return err
		}
		dashboard.CurrentInvestmentValue = current
		dashboard.InitialInvestmentValue = initial
		return nil
	})

	g.Go(func() error {
		best, worst, err := s.valuationService.PerformanceExtremes(userID)
		if err != nil {
			return err
		}
		dashboard.BestPerformingFund = best
		dashboard.WorstPerformingFund = worst
		return nil
	})

	g.Go(func() error {
		points, err := s.performanceService.HistoricalPerformance(userID, Period1M)
		if err != nil {
			return err
		}
		dashboard.PerformanceData = points
		return nil
	})

	g.Go(func() error {
		allocation, err := s.allocationService.Aggregate(userID, model.DimensionSector)
		if err != nil {
			return err
		}
		dashboard.SectorAllocation = allocation
		return nil
	})

	g.Go(func() error {
		overlaps, err := s.overlapService.OverlapsForUser(userID)
		if err != nil {
			return err
		}
		dashboard.FundOverlap = overlaps
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	return dashboard, nil
}

package service

import (
	"errors"
	"time"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// FundService handles fund-related business logic operations.
type FundService struct {
	fundRepo *repository.FundRepository
	navRepo  *repository.NAVRepository
}

// NewFundService creates a new FundService with the provided repository dependencies.
func NewFundService(fundRepo *repository.FundRepository, navRepo *repository.NAVRepository) *FundService {
	return &FundService{
		fundRepo: fundRepo,
		navRepo:  navRepo,
	}
}

// CreateFund creates a fund after checking the ISIN is not already taken.
// Returns apperrors.ErrDuplicateEntry on an ISIN collision.
func (s *FundService) CreateFund(name, fundType, isin string, nav float64) (model.Fund, error) {
	if nav <= 0 {
		return model.Fund{}, apperrors.ErrInvalidNAV
	}

	_, err := s.fundRepo.GetFundByISIN(isin)
	if err == nil {
		return model.Fund{}, apperrors.ErrDuplicateEntry
	}
	if !errors.Is(err, apperrors.ErrFundNotFound) {
		return model.Fund{}, err
	}

	return s.fundRepo.CreateFund(name, fundType, isin, nav)
}

// GetFund retrieves a single fund by ID.
func (s *FundService) GetFund(fundID int64) (model.Fund, error) {
	return s.fundRepo.GetFund(fundID)
}

// GetFunds retrieves funds with offset/limit paging.
func (s *FundService) GetFunds(offset, limit int) ([]model.Fund, error) {
	return s.fundRepo.GetFunds(offset, limit)
}

// UpdateFund replaces a fund's mutable fields.
func (s *FundService) UpdateFund(fundID int64, name, fundType, isin string, nav float64) (model.Fund, error) {
	if nav <= 0 {
		return model.Fund{}, apperrors.ErrInvalidNAV
	}
	return s.fundRepo.UpdateFund(fundID, name, fundType, isin, nav)
}

// DeleteFund removes a fund and its dependent rows.
func (s *FundService) DeleteFund(fundID int64) error {
	return s.fundRepo.DeleteFund(fundID)
}

// AddNAVPoint ingests one NAV observation for a fund. The point is upserted
// into the history; when it is the fund's newest observation the fund
// table's latest-NAV column is refreshed so the valuation paths see it
// immediately rather than after the nightly sync.
func (s *FundService) AddNAVPoint(fundID int64, date time.Time, nav float64) error {
	if nav <= 0 {
		return apperrors.ErrInvalidNAV
	}

	if _, err := s.fundRepo.GetFund(fundID); err != nil {
		return err
	}

	if err := s.navRepo.UpsertNAVPoint(fundID, date, nav); err != nil {
		return err
	}

	newest, err := s.navRepo.LatestPointForFund(fundID)
	if err != nil {
		return err
	}
	if repository.FormatDate(newest.Date) == repository.FormatDate(date) {
		return s.fundRepo.UpdateNav(fundID, nav)
	}
	return nil
}

// GetFundHistory retrieves a fund's NAV points within an inclusive date range.
// Returns apperrors.ErrFundNotFound when the fund does not exist; a fund with
// no observations in the range yields an empty slice.
func (s *FundService) GetFundHistory(fundID int64, startDate, endDate time.Time) ([]model.NAVPoint, error) {
	if _, err := s.fundRepo.GetFund(fundID); err != nil {
		return nil, err
	}
	if startDate.After(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	return s.navRepo.GetFundHistory(fundID, startDate, endDate)
}

package service

import (
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// OverlapService reads and formats precomputed fund overlap records.
// Overlap percentages are ingested by an external process; nothing here
// derives overlap from holdings.
type OverlapService struct {
	investmentRepo *repository.InvestmentRepository
	overlapRepo    *repository.OverlapRepository
	fundRepo       *repository.FundRepository
}

// NewOverlapService creates a new OverlapService with the provided repository dependencies.
func NewOverlapService(
	investmentRepo *repository.InvestmentRepository,
	overlapRepo *repository.OverlapRepository,
	fundRepo *repository.FundRepository,
) *OverlapService {
	return &OverlapService{
		investmentRepo: investmentRepo,
		overlapRepo:    overlapRepo,
		fundRepo:       fundRepo,
	}
}

// fundNameOrUnknown degrades a missing display name to "Unknown" instead of
// failing the request; a missing name indicates a dangling fund reference.
func fundNameOrUnknown(names map[int64]string, fundID int64) string {
	if name, ok := names[fundID]; ok {
		return name
	}
	return "Unknown"
}

// PairOverlap retrieves the overlap record for two funds, matching the pair
// in either stored order, annotated with display names. Returns
// apperrors.ErrOverlapNotFound when the pair has no precomputed record; that
// is a normal "no data" outcome.
func (s *OverlapService) PairOverlap(fundID1, fundID2 int64) (model.OverlapDetail, error) {
	record, err := s.overlapRepo.GetPair(fundID1, fundID2)
	if err != nil {
		return model.OverlapDetail{}, err
	}

	names, err := s.fundRepo.GetFundNames([]int64{record.FundID1, record.FundID2})
	if err != nil {
		return model.OverlapDetail{}, err
	}

	return model.OverlapDetail{
		FundID1:           record.FundID1,
		FundID2:           record.FundID2,
		FundName1:         fundNameOrUnknown(names, record.FundID1),
		FundName2:         fundNameOrUnknown(names, record.FundID2),
		OverlapPercentage: record.OverlapPercentage,
		OverlappingStocks: record.OverlappingStocks,
	}, nil
}

// OverlapsForUser retrieves every stored overlap record between funds the
// user holds. Fewer than two distinct funds means no pairs can exist, so an
// empty slice is returned.
func (s *OverlapService) OverlapsForUser(userID int64) ([]model.OverlapDetail, error) {
	investments, err := s.investmentRepo.GetUserInvestments(userID)
	if err != nil {
		return nil, err
	}

	fundIDs := distinctFundIDs(investments)
	if len(fundIDs) < 2 {
		return []model.OverlapDetail{}, nil
	}

	records, err := s.overlapRepo.GetInvolving(fundIDs)
	if err != nil {
		return nil, err
	}

	names, err := s.fundRepo.GetFundNames(fundIDs)
	if err != nil {
		return nil, err
	}

	details := make([]model.OverlapDetail, len(records))
	for i, record := range records {
		details[i] = model.OverlapDetail{
			FundID1:           record.FundID1,
			FundID2:           record.FundID2,
			FundName1:         fundNameOrUnknown(names, record.FundID1),
			FundName2:         fundNameOrUnknown(names, record.FundID2),
			OverlapPercentage: record.OverlapPercentage,
			OverlappingStocks: record.OverlappingStocks,
		}
	}

	return details, nil
}

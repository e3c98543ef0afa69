package service

import (
	"time"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// InvestmentService handles lot-related business logic operations.
// Units are derived from amount and purchase NAV here, never by callers.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
	userRepo       *repository.UserRepository
	fundRepo       *repository.FundRepository
}

// NewInvestmentService creates a new InvestmentService with the provided repository dependencies.
func NewInvestmentService(
	investmentRepo *repository.InvestmentRepository,
	userRepo *repository.UserRepository,
	fundRepo *repository.FundRepository,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		userRepo:       userRepo,
		fundRepo:       fundRepo,
	}
}

// validatePurchase enforces the ingestion-time invariants: a positive amount
// and a strictly positive purchase NAV. A zero purchase NAV would poison the
// units derivation and every later return calculation, so it is rejected
// here and never reaches the analytics paths.
func validatePurchase(amount, navAtInvestment float64) error {
	if amount <= 0 {
		return apperrors.ErrNegativeAmount
	}
	if navAtInvestment <= 0 {
		return apperrors.ErrInvalidNAV
	}
	return nil
}

// CreateInvestment records a new lot for a user. The referenced user and fund
// must exist; units = amount / navAtInvestment is computed at write time.
func (s *InvestmentService) CreateInvestment(userID, fundID int64, date time.Time, amount, navAtInvestment float64) (model.Investment, error) {
	if err := validatePurchase(amount, navAtInvestment); err != nil {
		return model.Investment{}, err
	}
	if _, err := s.userRepo.GetUser(userID); err != nil {
		return model.Investment{}, err
	}
	if _, err := s.fundRepo.GetFund(fundID); err != nil {
		return model.Investment{}, err
	}

	units := amount / navAtInvestment
	return s.investmentRepo.CreateInvestment(userID, fundID, date, amount, navAtInvestment, units)
}

// GetInvestment retrieves a single lot by its UUID.
func (s *InvestmentService) GetInvestment(investmentID string) (model.Investment, error) {
	return s.investmentRepo.GetInvestment(investmentID)
}

// GetUserInvestments retrieves all lots owned by a user, verifying the user
// exists first.
func (s *InvestmentService) GetUserInvestments(userID int64) ([]model.Investment, error) {
	if _, err := s.userRepo.GetUser(userID); err != nil {
		return nil, err
	}
	return s.investmentRepo.GetUserInvestments(userID)
}

// UpdateInvestment replaces a lot's fields. Units are recomputed only when
// amount or purchase NAV actually changed; otherwise the stored derivation is
// kept as-is.
func (s *InvestmentService) UpdateInvestment(investmentID string, userID, fundID int64, date time.Time, amount, navAtInvestment float64) (model.Investment, error) {
	if err := validatePurchase(amount, navAtInvestment); err != nil {
		return model.Investment{}, err
	}

	existing, err := s.investmentRepo.GetInvestment(investmentID)
	if err != nil {
		return model.Investment{}, err
	}
	if _, err := s.userRepo.GetUser(userID); err != nil {
		return model.Investment{}, err
	}
	if _, err := s.fundRepo.GetFund(fundID); err != nil {
		return model.Investment{}, err
	}

	units := existing.Units
	if amount != existing.Amount || navAtInvestment != existing.NavAtInvestment {
		units = amount / navAtInvestment
	}

	return s.investmentRepo.UpdateInvestment(investmentID, userID, fundID, date, amount, navAtInvestment, units)
}

// DeleteInvestment removes a lot by its UUID.
func (s *InvestmentService) DeleteInvestment(investmentID string) error {
	return s.investmentRepo.DeleteInvestment(investmentID)
}

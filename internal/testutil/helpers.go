package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
	"github.com/investdash/investment-dashboard-backend/internal/service"
)

func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	return service.NewUserService(repository.NewUserRepository(db))
}

func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()

	return service.NewFundService(
		repository.NewFundRepository(db),
		repository.NewNAVRepository(db),
	)
}

func NewTestInvestmentService(t *testing.T, db *sql.DB) *service.InvestmentService {
	t.Helper()

	return service.NewInvestmentService(
		repository.NewInvestmentRepository(db),
		repository.NewUserRepository(db),
		repository.NewFundRepository(db),
	)
}

func NewTestValuationService(t *testing.T, db *sql.DB) *service.ValuationService {
	t.Helper()

	return service.NewValuationService(
		repository.NewInvestmentRepository(db),
		repository.NewFundRepository(db),
	)
}

func NewTestPerformanceService(t *testing.T, db *sql.DB) *service.PerformanceService {
	t.Helper()

	return service.NewPerformanceService(
		repository.NewInvestmentRepository(db),
		repository.NewNAVRepository(db),
	)
}

func NewTestAllocationService(t *testing.T, db *sql.DB) *service.AllocationService {
	t.Helper()

	return service.NewAllocationService(
		repository.NewInvestmentRepository(db),
		repository.NewAllocationRepository(db),
		repository.NewFundRepository(db),
	)
}

func NewTestOverlapService(t *testing.T, db *sql.DB) *service.OverlapService {
	t.Helper()

	return service.NewOverlapService(
		repository.NewInvestmentRepository(db),
		repository.NewOverlapRepository(db),
		repository.NewFundRepository(db),
	)
}

func NewTestNavSyncService(t *testing.T, db *sql.DB) *service.NavSyncService {
	t.Helper()

	return service.NewNavSyncService(
		repository.NewFundRepository(db),
		repository.NewNAVRepository(db),
	)
}

func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		repository.NewUserRepository(db),
		NewTestValuationService(t, db),
		NewTestPerformanceService(t, db),
		NewTestAllocationService(t, db),
		NewTestOverlapService(t, db),
	)
}

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// MakeISIN generates a realistic ISIN code for testing.
//
// Example usage:
//
//	isin := testutil.MakeISIN("IN")
//	// Returns: "IN1A2B3C4D5E"
func MakeISIN(prefix string) string {
	if prefix == "" {
		prefix = "IN"
	}
	return prefix + randomAlphanumeric(10)
}

// MakeFundName generates a unique fund name for testing.
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeEmail generates a unique email address for testing.
func MakeEmail() string {
	return "user" + randomAlphanumeric(8) + "@example.com"
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

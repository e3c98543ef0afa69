package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/investdash/investment-dashboard-backend/internal/model"
)

const dateLayout = "2006-01-02"

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	user := testutil.NewUser().Build(t, db)
//	user := testutil.NewUser().WithName("Alice").WithEmail("alice@example.com").Build(t, db)
type UserBuilder struct {
	Name  string
	Email string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		Name:  "Test User",
		Email: MakeEmail(),
	}
}

// WithName sets a custom name.
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	result, err := db.Exec(`INSERT INTO users (name, email) VALUES (?, ?)`, b.Name, b.Email)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get test user ID: %v", err)
	}

	return model.User{
		ID:    id,
		Name:  b.Name,
		Email: b.Email,
	}
}

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	fund := testutil.NewFund().WithName("Alpha Fund").WithNav(110.0).Build(t, db)
type FundBuilder struct {
	Name     string
	FundType string
	Isin     string
	Nav      float64
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		Name:     MakeFundName("Test Fund"),
		FundType: "Large Cap",
		Isin:     MakeISIN("IN"),
		Nav:      100.0,
	}
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// WithFundType sets a custom fund type.
func (b *FundBuilder) WithFundType(fundType string) *FundBuilder {
	b.FundType = fundType
	return b
}

// WithISIN sets a custom ISIN.
func (b *FundBuilder) WithISIN(isin string) *FundBuilder {
	b.Isin = isin
	return b
}

// WithNav sets the fund's latest NAV.
func (b *FundBuilder) WithNav(nav float64) *FundBuilder {
	b.Nav = nav
	return b
}

// Build creates the fund in the database and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	result, err := db.Exec(
		`INSERT INTO fund (name, fund_type, isin, nav) VALUES (?, ?, ?, ?)`,
		b.Name, b.FundType, b.Isin, b.Nav,
	)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get test fund ID: %v", err)
	}

	return model.Fund{
		ID:       id,
		Name:     b.Name,
		FundType: b.FundType,
		Isin:     b.Isin,
		Nav:      b.Nav,
	}
}

// InvestmentBuilder provides a fluent interface for creating test
// investments (lots).
//
// Example usage:
//
//	inv := testutil.NewInvestment(user.ID, fund.ID).
//	    WithAmount(100000).
//	    WithNavAtInvestment(100).
//	    WithDate("2023-01-10").
//	    Build(t, db)
type InvestmentBuilder struct {
	ID              string
	UserID          int64
	FundID          int64
	InvestmentDate  string
	Amount          float64
	NavAtInvestment float64
}

// NewInvestment creates an InvestmentBuilder with sensible defaults.
// Units are always derived as amount / nav_at_investment.
func NewInvestment(userID, fundID int64) *InvestmentBuilder {
	return &InvestmentBuilder{
		ID:              MakeID(),
		UserID:          userID,
		FundID:          fundID,
		InvestmentDate:  "2023-01-01",
		Amount:          100000.0,
		NavAtInvestment: 100.0,
	}
}

// WithDate sets the purchase date (YYYY-MM-DD).
func (b *InvestmentBuilder) WithDate(date string) *InvestmentBuilder {
	b.InvestmentDate = date
	return b
}

// WithAmount sets the invested amount.
func (b *InvestmentBuilder) WithAmount(amount float64) *InvestmentBuilder {
	b.Amount = amount
	return b
}

// WithNavAtInvestment sets the purchase NAV.
func (b *InvestmentBuilder) WithNavAtInvestment(nav float64) *InvestmentBuilder {
	b.NavAtInvestment = nav
	return b
}

// Build creates the investment in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	units := b.Amount / b.NavAtInvestment
	_, err := db.Exec(
		`INSERT INTO investment (id, user_id, fund_id, investment_date, amount, nav_at_investment, units)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.FundID, b.InvestmentDate, b.Amount, b.NavAtInvestment, units,
	)
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	date, err := time.Parse(dateLayout, b.InvestmentDate)
	if err != nil {
		t.Fatalf("Invalid test investment date %q: %v", b.InvestmentDate, err)
	}

	return model.Investment{
		ID:              b.ID,
		UserID:          b.UserID,
		FundID:          b.FundID,
		InvestmentDate:  date,
		Amount:          b.Amount,
		NavAtInvestment: b.NavAtInvestment,
		Units:           units,
	}
}

// Convenience functions

// CreateNAVPoint inserts one NAV observation for a fund.
func CreateNAVPoint(t *testing.T, db *sql.DB, fundID int64, date string, nav float64) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO nav_history (id, fund_id, date, nav) VALUES (?, ?, ?, ?)`,
		MakeID(), fundID, date, nav,
	)
	if err != nil {
		t.Fatalf("Failed to create test NAV point: %v", err)
	}
}

// CreateAllocation inserts one allocation table row for a fund.
func CreateAllocation(t *testing.T, db *sql.DB, fundID int64, dimension model.AllocationDimension, category string, percentage float64) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO fund_allocation (id, fund_id, dimension, category, percentage) VALUES (?, ?, ?, ?, ?)`,
		MakeID(), fundID, dimension, category, percentage,
	)
	if err != nil {
		t.Fatalf("Failed to create test allocation: %v", err)
	}
}

// CreateOverlap inserts one precomputed overlap record for a fund pair.
func CreateOverlap(t *testing.T, db *sql.DB, fundID1, fundID2 int64, overlapPercentage float64, overlappingStocks int) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO fund_overlap (id, fund_id_1, fund_id_2, overlap_percentage, overlapping_stocks)
		 VALUES (?, ?, ?, ?, ?)`,
		MakeID(), fundID1, fundID2, overlapPercentage, overlappingStocks,
	)
	if err != nil {
		t.Fatalf("Failed to create test overlap: %v", err)
	}
}

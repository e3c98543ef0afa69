package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// InvestmentRepository provides data access methods for the investment table.
// Each row is one lot: a discrete purchase of a fund by a user.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

const investmentColumns = `id, user_id, fund_id, investment_date, amount, nav_at_investment, units, created_at`

func scanInvestment(scan func(dest ...any) error) (model.Investment, error) {
	var inv model.Investment
	var dateStr, createdAt string

	err := scan(
		&inv.ID,
		&inv.UserID,
		&inv.FundID,
		&dateStr,
		&inv.Amount,
		&inv.NavAtInvestment,
		&inv.Units,
		&createdAt,
	)
	if err != nil {
		return model.Investment{}, err
	}

	if inv.InvestmentDate, err = ParseTime(dateStr); err != nil {
		return model.Investment{}, err
	}
	if inv.CreatedAt, err = ParseTimestamp(createdAt); err != nil {
		return model.Investment{}, err
	}
	return inv, nil
}

// CreateInvestment inserts a new lot with a generated UUID and returns it.
// Units must already be derived from amount and purchase NAV by the caller.
func (r *InvestmentRepository) CreateInvestment(userID, fundID int64, date time.Time, amount, navAtInvestment, units float64) (model.Investment, error) {
	id := uuid.NewString()

	_, err := r.db.Exec(
		`INSERT INTO investment (id, user_id, fund_id, investment_date, amount, nav_at_investment, units)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, userID, fundID, FormatDate(date), amount, navAtInvestment, units,
	)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to insert investment: %w", err)
	}

	return r.GetInvestment(id)
}

// GetInvestment retrieves a single lot by its UUID.
// Returns apperrors.ErrInvestmentNotFound when no row with that ID exists.
func (r *InvestmentRepository) GetInvestment(investmentID string) (model.Investment, error) {
	row := r.db.QueryRow(
		`SELECT `+investmentColumns+` FROM investment WHERE id = ?`,
		investmentID,
	)

	inv, err := scanInvestment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to query investment table: %w", err)
	}
	return inv, nil
}

// GetUserInvestments retrieves all lots owned by a user, oldest purchase first.
// Returns an empty slice if the user holds nothing.
func (r *InvestmentRepository) GetUserInvestments(userID int64) ([]model.Investment, error) {
	rows, err := r.db.Query(
		`SELECT `+investmentColumns+` FROM investment WHERE user_id = ? ORDER BY investment_date, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}
	for rows.Next() {
		inv, err := scanInvestment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment table results: %w", err)
		}
		investments = append(investments, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return investments, nil
}

// UpdateInvestment replaces the mutable fields of a lot and returns the updated row.
// Units is written as provided; the service layer recomputes it only when
// amount or purchase NAV actually changed.
func (r *InvestmentRepository) UpdateInvestment(investmentID string, userID, fundID int64, date time.Time, amount, navAtInvestment, units float64) (model.Investment, error) {
	result, err := r.db.Exec(
		`UPDATE investment
		 SET user_id = ?, fund_id = ?, investment_date = ?, amount = ?, nav_at_investment = ?, units = ?
		 WHERE id = ?`,
		userID, fundID, FormatDate(date), amount, navAtInvestment, units, investmentID,
	)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to update investment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}

	return r.GetInvestment(investmentID)
}

// DeleteInvestment removes a lot by its UUID.
// Returns apperrors.ErrInvestmentNotFound when no row with that ID exists.
func (r *InvestmentRepository) DeleteInvestment(investmentID string) error {
	result, err := r.db.Exec(`DELETE FROM investment WHERE id = ?`, investmentID)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// FundRepository provides data access methods for the fund table.
// It handles fund metadata and the latest-NAV column; historical NAV data
// lives in NAVRepository.
type FundRepository struct {
	db *sql.DB
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

const fundColumns = `id, name, fund_type, isin, nav, created_at, updated_at`

func scanFund(scan func(dest ...any) error) (model.Fund, error) {
	var f model.Fund
	var createdAt, updatedAt string

	if err := scan(&f.ID, &f.Name, &f.FundType, &f.Isin, &f.Nav, &createdAt, &updatedAt); err != nil {
		return model.Fund{}, err
	}

	var err error
	if f.CreatedAt, err = ParseTimestamp(createdAt); err != nil {
		return model.Fund{}, err
	}
	if f.UpdatedAt, err = ParseTimestamp(updatedAt); err != nil {
		return model.Fund{}, err
	}
	return f, nil
}

// CreateFund inserts a new fund and returns it with the generated ID populated.
func (r *FundRepository) CreateFund(name, fundType, isin string, nav float64) (model.Fund, error) {
	result, err := r.db.Exec(
		`INSERT INTO fund (name, fund_type, isin, nav) VALUES (?, ?, ?, ?)`,
		name, fundType, isin, nav,
	)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to insert fund: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to read inserted fund id: %w", err)
	}

	return r.GetFund(id)
}

// GetFund retrieves a single fund by ID.
// Returns apperrors.ErrFundNotFound when no fund with that ID exists.
func (r *FundRepository) GetFund(fundID int64) (model.Fund, error) {
	row := r.db.QueryRow(`SELECT `+fundColumns+` FROM fund WHERE id = ?`, fundID)

	f, err := scanFund(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to query fund table: %w", err)
	}
	return f, nil
}

// GetFundByISIN retrieves a single fund by its ISIN.
// Returns apperrors.ErrFundNotFound when no fund with that ISIN exists.
func (r *FundRepository) GetFundByISIN(isin string) (model.Fund, error) {
	row := r.db.QueryRow(`SELECT `+fundColumns+` FROM fund WHERE isin = ?`, isin)

	f, err := scanFund(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to query fund table: %w", err)
	}
	return f, nil
}

// GetFunds retrieves funds ordered by ID with offset/limit paging.
// Returns an empty slice if no funds are found.
func (r *FundRepository) GetFunds(offset, limit int) ([]model.Fund, error) {
	rows, err := r.db.Query(
		`SELECT `+fundColumns+` FROM fund ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	funds := []model.Fund{}
	for rows.Next() {
		f, err := scanFund(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}
		funds = append(funds, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return funds, nil
}

// GetFundNames retrieves display names for the given fund IDs.
// Missing IDs are simply absent from the returned map; callers decide how to
// degrade (typically to the "Unknown" placeholder).
func (r *FundRepository) GetFundNames(fundIDs []int64) (map[int64]string, error) {
	if len(fundIDs) == 0 {
		return map[int64]string{}, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT id, name FROM fund WHERE id IN (` + placeholders(len(fundIDs)) + `)`

	rows, err := r.db.Query(query, int64Args(fundIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	names := make(map[int64]string, len(fundIDs))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}
		names[id] = name
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return names, nil
}

// GetLatestNavs retrieves the latest NAV per fund for the given fund IDs,
// read from the fund table's nav column.
func (r *FundRepository) GetLatestNavs(fundIDs []int64) (map[int64]float64, error) {
	if len(fundIDs) == 0 {
		return map[int64]float64{}, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT id, nav FROM fund WHERE id IN (` + placeholders(len(fundIDs)) + `)`

	rows, err := r.db.Query(query, int64Args(fundIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	navs := make(map[int64]float64, len(fundIDs))
	for rows.Next() {
		var id int64
		var nav float64
		if err := rows.Scan(&id, &nav); err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}
		navs[id] = nav
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return navs, nil
}

// UpdateFund updates the mutable fund fields and returns the updated row.
// Returns apperrors.ErrFundNotFound when no fund with that ID exists.
func (r *FundRepository) UpdateFund(fundID int64, name, fundType, isin string, nav float64) (model.Fund, error) {
	result, err := r.db.Exec(
		`UPDATE fund
		 SET name = ?, fund_type = ?, isin = ?, nav = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		name, fundType, isin, nav, fundID,
	)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to update fund: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.Fund{}, apperrors.ErrFundNotFound
	}

	return r.GetFund(fundID)
}

// UpdateNav sets the latest-NAV column for a fund.
// Used by the nav sync job and by NAV-point ingestion.
func (r *FundRepository) UpdateNav(fundID int64, nav float64) error {
	result, err := r.db.Exec(
		`UPDATE fund SET nav = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		nav, fundID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fund nav: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

// DeleteFund removes a fund and, through foreign keys, its dependent rows.
// Returns apperrors.ErrFundNotFound when no fund with that ID exists.
func (r *FundRepository) DeleteFund(fundID int64) error {
	result, err := r.db.Exec(`DELETE FROM fund WHERE id = ?`, fundID)
	if err != nil {
		return fmt.Errorf("failed to delete fund: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

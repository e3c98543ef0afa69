package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// AllocationRepository provides data access methods for the fund_allocation
// table, which holds per-fund allocation entries for every dimension
// (sector, stock, market_cap).
type AllocationRepository struct {
	db *sql.DB
}

// NewAllocationRepository creates a new AllocationRepository with the provided database connection.
func NewAllocationRepository(db *sql.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// CreateEntry inserts one allocation row for a fund and dimension.
func (r *AllocationRepository) CreateEntry(fundID int64, dimension model.AllocationDimension, category string, percentage float64) error {
	_, err := r.db.Exec(
		`INSERT INTO fund_allocation (id, fund_id, dimension, category, percentage)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), fundID, string(dimension), category, percentage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert allocation entry: %w", err)
	}
	return nil
}

// GetEntries retrieves all allocation rows for the given funds in one dimension.
// Returns an empty slice when none of the funds has allocation data.
func (r *AllocationRepository) GetEntries(fundIDs []int64, dimension model.AllocationDimension) ([]model.AllocationEntry, error) {
	if len(fundIDs) == 0 {
		return []model.AllocationEntry{}, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, fund_id, dimension, category, percentage
		FROM fund_allocation
		WHERE dimension = ?
		AND fund_id IN (` + placeholders(len(fundIDs)) + `)
	`

	args := make([]any, 0, len(fundIDs)+1)
	args = append(args, string(dimension))
	args = append(args, int64Args(fundIDs)...)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_allocation table: %w", err)
	}
	defer rows.Close()

	entries := []model.AllocationEntry{}
	for rows.Next() {
		var e model.AllocationEntry
		var dim string
		if err := rows.Scan(&e.ID, &e.FundID, &dim, &e.Category, &e.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan fund_allocation table results: %w", err)
		}
		e.Dimension = model.AllocationDimension(dim)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_allocation table: %w", err)
	}

	return entries, nil
}

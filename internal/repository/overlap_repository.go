package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// OverlapRepository provides data access methods for the fund_overlap table.
// Overlap records are ingested precomputed; this repository never derives them
// from holdings.
type OverlapRepository struct {
	db *sql.DB
}

// NewOverlapRepository creates a new OverlapRepository with the provided database connection.
func NewOverlapRepository(db *sql.DB) *OverlapRepository {
	return &OverlapRepository{db: db}
}

// CreateRecord inserts one precomputed overlap row for a fund pair.
func (r *OverlapRepository) CreateRecord(fundID1, fundID2 int64, overlapPercentage float64, overlappingStocks int) error {
	_, err := r.db.Exec(
		`INSERT INTO fund_overlap (id, fund_id_1, fund_id_2, overlap_percentage, overlapping_stocks)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), fundID1, fundID2, overlapPercentage, overlappingStocks,
	)
	if err != nil {
		return fmt.Errorf("failed to insert overlap record: %w", err)
	}
	return nil
}

// GetPair retrieves the overlap record for a fund pair, matching the pair in
// either stored order. Returns apperrors.ErrOverlapNotFound when no record
// exists; that is a normal outcome, not every pair has precomputed data.
func (r *OverlapRepository) GetPair(fundID1, fundID2 int64) (model.OverlapRecord, error) {
	var rec model.OverlapRecord

	err := r.db.QueryRow(
		`SELECT id, fund_id_1, fund_id_2, overlap_percentage, overlapping_stocks
		 FROM fund_overlap
		 WHERE (fund_id_1 = ? AND fund_id_2 = ?)
		    OR (fund_id_1 = ? AND fund_id_2 = ?)`,
		fundID1, fundID2, fundID2, fundID1,
	).Scan(&rec.ID, &rec.FundID1, &rec.FundID2, &rec.OverlapPercentage, &rec.OverlappingStocks)

	if errors.Is(err, sql.ErrNoRows) {
		return model.OverlapRecord{}, apperrors.ErrOverlapNotFound
	}
	if err != nil {
		return model.OverlapRecord{}, fmt.Errorf("failed to query fund_overlap table: %w", err)
	}

	return rec, nil
}

// GetInvolving retrieves every overlap record whose both fund ids are in the
// given set. Returns an empty slice when no records match.
func (r *OverlapRepository) GetInvolving(fundIDs []int64) ([]model.OverlapRecord, error) {
	if len(fundIDs) == 0 {
		return []model.OverlapRecord{}, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, fund_id_1, fund_id_2, overlap_percentage, overlapping_stocks
		FROM fund_overlap
		WHERE fund_id_1 IN (` + placeholders(len(fundIDs)) + `)
		AND fund_id_2 IN (` + placeholders(len(fundIDs)) + `)
	`

	args := make([]any, 0, 2*len(fundIDs))
	args = append(args, int64Args(fundIDs)...)
	args = append(args, int64Args(fundIDs)...)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_overlap table: %w", err)
	}
	defer rows.Close()

	records := []model.OverlapRecord{}
	for rows.Next() {
		var rec model.OverlapRecord
		if err := rows.Scan(&rec.ID, &rec.FundID1, &rec.FundID2, &rec.OverlapPercentage, &rec.OverlappingStocks); err != nil {
			return nil, fmt.Errorf("failed to scan fund_overlap table results: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_overlap table: %w", err)
	}

	return records, nil
}

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

// NAVRepository provides data access methods for the nav_history table.
// The table is append-only: one observation per fund per calendar date.
type NAVRepository struct {
	db *sql.DB
}

// NewNAVRepository creates a new NAVRepository with the provided database connection.
func NewNAVRepository(db *sql.DB) *NAVRepository {
	return &NAVRepository{db: db}
}

// UpsertNAVPoint inserts a NAV observation for (fund, date), replacing the
// value if the date was already observed. Re-seeding is the only path that
// overwrites historical points.
func (r *NAVRepository) UpsertNAVPoint(fundID int64, date time.Time, nav float64) error {
	_, err := r.db.Exec(
		`INSERT INTO nav_history (id, fund_id, date, nav)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(fund_id, date) DO UPDATE SET nav = excluded.nav`,
		uuid.NewString(), fundID, FormatDate(date), nav,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert nav point: %w", err)
	}
	return nil
}

// GetObservedDates retrieves the distinct dates in [startDate, endDate] on
// which any fund has a NAV observation, in ascending order.
// This is the candidate date set for the time-series sampler.
func (r *NAVRepository) GetObservedDates(startDate, endDate time.Time) ([]time.Time, error) {
	if startDate.After(endDate) {
		return nil, fmt.Errorf("startDate (%s) must be before or equal to endDate (%s)",
			FormatDate(startDate), FormatDate(endDate))
	}

	rows, err := r.db.Query(
		`SELECT DISTINCT date FROM nav_history WHERE date >= ? AND date <= ? ORDER BY date`,
		FormatDate(startDate), FormatDate(endDate),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query nav_history table: %w", err)
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var dateStr string
		if err := rows.Scan(&dateStr); err != nil {
			return nil, fmt.Errorf("failed to scan nav_history table results: %w", err)
		}
		date, err := ParseTime(dateStr)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nav_history table: %w", err)
	}

	return dates, nil
}

// GetNAVHistory retrieves NAV points for the given fund IDs within the
// specified inclusive date range, grouped by fund and sorted by date ascending.
func (r *NAVRepository) GetNAVHistory(fundIDs []int64, startDate, endDate time.Time) (map[int64][]model.NAVPoint, error) {
	if len(fundIDs) == 0 {
		return map[int64][]model.NAVPoint{}, nil
	}
	if startDate.After(endDate) {
		return nil, fmt.Errorf("startDate (%s) must be before or equal to endDate (%s)",
			FormatDate(startDate), FormatDate(endDate))
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, fund_id, date, nav
		FROM nav_history
		WHERE fund_id IN (` + placeholders(len(fundIDs)) + `)
		AND date >= ?
		AND date <= ?
		ORDER BY fund_id ASC, date ASC
	`

	args := int64Args(fundIDs)
	args = append(args, FormatDate(startDate), FormatDate(endDate))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query nav_history table: %w", err)
	}
	defer rows.Close()

	pointsByFund := make(map[int64][]model.NAVPoint)
	for rows.Next() {
		var dateStr string
		var p model.NAVPoint

		if err := rows.Scan(&p.ID, &p.FundID, &dateStr, &p.Nav); err != nil {
			return nil, fmt.Errorf("failed to scan nav_history table results: %w", err)
		}

		p.Date, err = ParseTime(dateStr)
		if err != nil || p.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		pointsByFund[p.FundID] = append(pointsByFund[p.FundID], p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nav_history table: %w", err)
	}

	return pointsByFund, nil
}

// GetFundHistory retrieves the NAV points of a single fund within the
// specified inclusive date range, sorted by date ascending.
func (r *NAVRepository) GetFundHistory(fundID int64, startDate, endDate time.Time) ([]model.NAVPoint, error) {
	history, err := r.GetNAVHistory([]int64{fundID}, startDate, endDate)
	if err != nil {
		return nil, err
	}
	points := history[fundID]
	if points == nil {
		points = []model.NAVPoint{}
	}
	return points, nil
}

// LatestPointForFund retrieves the most recent NAV observation for one fund.
// Returns apperrors.ErrNAVPointNotFound when the fund has no history at all.
func (r *NAVRepository) LatestPointForFund(fundID int64) (model.NAVPoint, error) {
	var dateStr string
	var p model.NAVPoint

	err := r.db.QueryRow(
		`SELECT id, fund_id, date, nav FROM nav_history WHERE fund_id = ? ORDER BY date DESC LIMIT 1`,
		fundID,
	).Scan(&p.ID, &p.FundID, &dateStr, &p.Nav)

	if errors.Is(err, sql.ErrNoRows) {
		return model.NAVPoint{}, apperrors.ErrNAVPointNotFound
	}
	if err != nil {
		return model.NAVPoint{}, fmt.Errorf("failed to query nav_history table: %w", err)
	}

	if p.Date, err = ParseTime(dateStr); err != nil {
		return model.NAVPoint{}, err
	}
	return p, nil
}

// GetNewestPoints retrieves the most recent NAV observation per fund across
// the whole history table. Used by the nav sync job to refresh the fund
// table's latest-NAV column.
func (r *NAVRepository) GetNewestPoints() (map[int64]model.NAVPoint, error) {
	query := `
		SELECT nh.id, nh.fund_id, nh.date, nh.nav
		FROM nav_history nh
		INNER JOIN (
			SELECT fund_id, MAX(date) as latest_date
			FROM nav_history
			GROUP BY fund_id
		) latest ON nh.fund_id = latest.fund_id AND nh.date = latest.latest_date
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query nav_history table: %w", err)
	}
	defer rows.Close()

	newest := make(map[int64]model.NAVPoint)
	for rows.Next() {
		var dateStr string
		var p model.NAVPoint

		if err := rows.Scan(&p.ID, &p.FundID, &dateStr, &p.Nav); err != nil {
			return nil, fmt.Errorf("failed to scan nav_history table results: %w", err)
		}

		p.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}

		newest[p.FundID] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nav_history table: %w", err)
	}

	return newest, nil
}

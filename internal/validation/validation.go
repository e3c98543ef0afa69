// Package validation provides request validation helpers shared by the HTTP layer.
package validation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ParseID parses a numeric entity ID from a URL parameter.
// IDs must be positive integers; 0 is reserved for the "no data" sentinel.
func ParseID(str string) (int64, error) {
	id, err := strconv.ParseInt(str, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidID, str)
	}
	return id, nil
}

// ParseDate parses a "2006-01-02" date from a request field.
func ParseDate(str string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", str, err)
	}
	return date.UTC(), nil
}

package repository

import (
	"fmt"
	"strings"
	"time"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// ParseTimestamp parses a DATETIME column value. SQLite stores
// CURRENT_TIMESTAMP as "2006-01-02 15:04:05"; RFC3339 and plain dates are
// accepted for rows written by the application.
func ParseTimestamp(str string) (time.Time, error) {
	ts, err := time.Parse("2006-01-02 15:04:05", str)
	if err != nil {
		return ParseTime(str)
	}
	return ts.UTC(), nil
}

// FormatDate renders a time as the DATE column format used throughout the schema.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// placeholders builds a "?,?,?" list for an IN clause with n entries.
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "?"
	}
	return strings.Join(parts, ",")
}

// int64Args converts fund or user ids to the []any shape database/sql expects.
func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrOverlapNotFound indicates no precomputed overlap record exists for a fund pair.
	// Not every pair has one; callers surface this as "no data" rather than a failure.
	ErrOverlapNotFound = errors.New("overlap data not found")

	// ErrNAVPointNotFound indicates no NAV observation for a specific fund and date combination.
	ErrNAVPointNotFound = errors.New("nav point not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidPeriod indicates that a performance period is not one of 1M, 3M, 6M, 1Y, 3Y, MAX.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDimension indicates an allocation dimension other than sector, stock or market_cap.
	ErrInvalidDimension = errors.New("invalid allocation dimension")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidID indicates that a numeric entity ID is missing or not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrNegativeAmount indicates that an amount field has an invalid non-positive value.
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrInvalidNAV indicates a NAV value that is not strictly positive.
	// Enforced at ingestion time so the engine never divides by a zero purchase NAV.
	ErrInvalidNAV = errors.New("nav must be positive")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Request errors represent malformed or incomplete input.
var (
	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

package services

import "errors"

// Structured error kinds surfaced by the record store. Callers branch with
// errors.Is; human-readable messages belong to the presentation boundary.
var (
	// ErrValidation indicates a required field was empty or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate indicates a date string that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format: expected YYYY-MM-DD")

	// ErrDuplicateCaseNumber indicates a unique constraint violation on
	// the case number.
	ErrDuplicateCaseNumber = errors.New("case number already exists")

	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("filing not found")

	// ErrStorage wraps failures of the underlying store.
	ErrStorage = errors.New("storage error")
)

package services

import (
	"fmt"
	"time"

	"filing_tracker_go/models"
)

// ParseDate parses a date string in the storage format (YYYY-MM-DD).
// It enforces strict checks but centralizes the logic for future format additions
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(models.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return parsedTime, nil
}

// ParseClock parses a time-of-day string in HH:MM format.
func ParseClock(clockStr string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", clockStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: notification time must be HH:MM", ErrValidation)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// FormatDate renders a time as a storage-format date string.
func FormatDate(t time.Time) string {
	return t.Format(models.DateFormat)
}

// Today returns the current local calendar date truncated to midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

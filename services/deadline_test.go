package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReviewDateFor(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		expected string
	}{
		{name: "Mid month", deadline: "2024-12-15", expected: "2024-12-13"},
		{name: "Year boundary", deadline: "2025-01-01", expected: "2024-12-30"},
		{name: "Into leap February", deadline: "2024-03-01", expected: "2024-02-28"},
		{name: "Into non-leap February", deadline: "2025-03-01", expected: "2025-02-27"},
		{name: "Month boundary", deadline: "2024-05-01", expected: "2024-04-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deadline, err := time.Parse("2006-01-02", tt.deadline)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, FormatDate(ReviewDateFor(deadline)))
		})
	}
}

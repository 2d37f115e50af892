package models

import (
	"time"
)

// DateFormat is the textual date format used at the storage boundary.
// Filing dates carry no time component.
const DateFormat = "2006-01-02"

// Filing represents a case filing ("dosya") with its petition deadline
// and the derived internal review date.
type Filing struct {
	ID        uint      `gorm:"primarykey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Case identification
	CaseNumber string `gorm:"not null;uniqueIndex" json:"case_number"`

	// Dates stored as ISO YYYY-MM-DD text. Lexicographic order equals
	// calendar order for this format, so range queries stay plain SQL.
	FilingDeadline string `gorm:"size:10;not null;index" json:"filing_deadline"`

	// ReviewDate is always FilingDeadline minus 2 calendar days. It is
	// recomputed on every deadline change and never set independently.
	ReviewDate string `gorm:"size:10;not null;index" json:"review_date"`

	Completed bool   `gorm:"not null;default:false" json:"completed"`
	Notes     string `gorm:"type:text;default:''" json:"notes"`
}

// TableName specifies the table name for Filing model
func (Filing) TableName() string {
	return "filings"
}

// DeadlineDate parses the stored filing deadline.
func (f *Filing) DeadlineDate() (time.Time, error) {
	return time.Parse(DateFormat, f.FilingDeadline)
}

// ReviewDateTime parses the stored review date.
func (f *Filing) ReviewDateTime() (time.Time, error) {
	return time.Parse(DateFormat, f.ReviewDate)
}

// IsDueOn checks whether either tracked date falls on the given day.
func (f *Filing) IsDueOn(date string) bool {
	return f.FilingDeadline == date || f.ReviewDate == date
}

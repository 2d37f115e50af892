package services

import (
	"errors"
	"fmt"
	"strings"

	"filing_tracker_go/models"

	"gorm.io/gorm"
)

// FilingService is the record store for case filings. All methods are
// synchronous; callers share a single database handle per process.
type FilingService struct {
	DB *gorm.DB
}

func NewFilingService(gdb *gorm.DB) *FilingService {
	return &FilingService{DB: gdb}
}

// FilingUpdate describes a partial update. Nil fields are left untouched.
type FilingUpdate struct {
	CaseNumber     *string
	FilingDeadline *string
	Notes          *string
	Completed      *bool
}

// Statistics summarizes the current state of the filing table.
type Statistics struct {
	Total       int64 `json:"total"`
	Completed   int64 `json:"completed"`
	Active      int64 `json:"active"`
	DueThisWeek int64 `json:"due_this_week"`
}

// Add validates and persists a new filing. The review date is derived from
// the filing deadline; nothing is written when validation fails.
func (s *FilingService) Add(caseNumber, filingDeadline, notes string) (*models.Filing, error) {
	caseNumber = strings.TrimSpace(caseNumber)
	if caseNumber == "" {
		return nil, fmt.Errorf("%w: case number must not be empty", ErrValidation)
	}

	deadline, err := ParseDate(filingDeadline)
	if err != nil {
		return nil, err
	}

	// Soft uniqueness check before insert; the unique index is the backstop.
	var count int64
	if err := s.DB.Model(&models.Filing{}).Where("case_number = ?", caseNumber).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if count > 0 {
		return nil, ErrDuplicateCaseNumber
	}

	filing := models.Filing{
		CaseNumber:     caseNumber,
		FilingDeadline: FormatDate(deadline),
		ReviewDate:     FormatDate(ReviewDateFor(deadline)),
		Notes:          notes,
	}

	if err := s.DB.Create(&filing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCaseNumber
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &filing, nil
}

// Update applies the supplied fields to the filing with the given id.
// Changing the filing deadline recomputes the review date from the new
// value. Returns false when no fields were supplied or the id is unknown.
func (s *FilingService) Update(id uint, upd FilingUpdate) (bool, error) {
	updates := map[string]interface{}{}

	if upd.CaseNumber != nil {
		caseNumber := strings.TrimSpace(*upd.CaseNumber)
		if caseNumber == "" {
			return false, fmt.Errorf("%w: case number must not be empty", ErrValidation)
		}

		// Reject collisions with a different existing record.
		var count int64
		if err := s.DB.Model(&models.Filing{}).
			Where("case_number = ? AND id != ?", caseNumber, id).
			Count(&count).Error; err != nil {
			return false, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		if count > 0 {
			return false, ErrDuplicateCaseNumber
		}
		updates["case_number"] = caseNumber
	}

	if upd.FilingDeadline != nil {
		deadline, err := ParseDate(*upd.FilingDeadline)
		if err != nil {
			return false, err
		}
		updates["filing_deadline"] = FormatDate(deadline)
		updates["review_date"] = FormatDate(ReviewDateFor(deadline))
	}

	if upd.Notes != nil {
		updates["notes"] = *upd.Notes
	}

	if upd.Completed != nil {
		updates["completed"] = *upd.Completed
	}

	if len(updates) == 0 {
		return false, nil
	}

	result := s.DB.Model(&models.Filing{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, ErrDuplicateCaseNumber
		}
		return false, fmt.Errorf("%w: %v", ErrStorage, result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the filing with the given id. Returns false when it does
// not exist. Ids are never reused.
func (s *FilingService) Delete(id uint) (bool, error) {
	result := s.DB.Delete(&models.Filing{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetByID fetches a single filing.
func (s *FilingService) GetByID(id uint) (*models.Filing, error) {
	var filing models.Filing
	err := s.DB.First(&filing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &filing, nil
}

// GetAll lists filings ordered by filing deadline ascending, then creation
// time descending. A non-positive limit disables pagination.
func (s *FilingService) GetAll(includeCompleted bool, limit, offset int) ([]models.Filing, error) {
	query := s.DB.Model(&models.Filing{}).
		Order("filing_deadline ASC, created_at DESC")

	if !includeCompleted {
		query = query.Where("completed = ?", false)
	}

	if limit > 0 {
		query = query.Limit(limit)
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var filings []models.Filing
	if err := query.Find(&filings).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return filings, nil
}

// Count returns the number of filings, optionally excluding completed ones.
func (s *FilingService) Count(includeCompleted bool) (int64, error) {
	query := s.DB.Model(&models.Filing{})
	if !includeCompleted {
		query = query.Where("completed = ?", false)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return count, nil
}

// Search returns filings whose case number or notes contain the term as a
// substring. SQLite LIKE matches ASCII case-insensitively.
func (s *FilingService) Search(term string) ([]models.Filing, error) {
	pattern := "%" + term + "%"

	var filings []models.Filing
	err := s.DB.Where("case_number LIKE ? OR notes LIKE ?", pattern, pattern).
		Order("filing_deadline ASC").
		Find(&filings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return filings, nil
}

// GetByDate returns filings whose deadline or review date falls on the
// given calendar day.
func (s *FilingService) GetByDate(date string) ([]models.Filing, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	target := FormatDate(day)

	var filings []models.Filing
	err = s.DB.Where("filing_deadline = ? OR review_date = ?", target, target).
		Order("filing_deadline ASC").
		Find(&filings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return filings, nil
}

// GetUpcoming returns non-completed filings whose deadline or review date
// falls within [today, today+daysAhead], both bounds inclusive. A record
// matching on both dates appears once.
func (s *FilingService) GetUpcoming(daysAhead int) ([]models.Filing, error) {
	today := FormatDate(Today())
	end := FormatDate(Today().AddDate(0, 0, daysAhead))

	var filings []models.Filing
	err := s.DB.Where(
		"((filing_deadline BETWEEN ? AND ?) OR (review_date BETWEEN ? AND ?)) AND completed = ?",
		today, end, today, end, false,
	).Order("filing_deadline ASC").Find(&filings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return filings, nil
}

// GetStatistics computes aggregate counts. On failure it returns zero-valued
// statistics together with the error so best-effort displays can degrade.
func (s *FilingService) GetStatistics() (Statistics, error) {
	var stats Statistics

	if err := s.DB.Model(&models.Filing{}).Count(&stats.Total).Error; err != nil {
		return Statistics{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if err := s.DB.Model(&models.Filing{}).Where("completed = ?", true).Count(&stats.Completed).Error; err != nil {
		return Statistics{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	stats.Active = stats.Total - stats.Completed

	today := FormatDate(Today())
	weekEnd := FormatDate(Today().AddDate(0, 0, 7))
	err := s.DB.Model(&models.Filing{}).
		Where("filing_deadline BETWEEN ? AND ? AND completed = ?", today, weekEnd, false).
		Count(&stats.DueThisWeek).Error
	if err != nil {
		return Statistics{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return stats, nil
}

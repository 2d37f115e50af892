package services

import (
	"time"

	"filing_tracker_go/models"
)

// Entry kinds used by the calendar grouping.
const (
	CalendarKindDeadline = "deadline"
	CalendarKindReview   = "review"
)

// CalendarEntry marks one filing's appearance on a calendar day, either for
// its filing deadline or for its internal review date.
type CalendarEntry struct {
	Filing models.Filing `json:"filing"`
	Kind   string        `json:"kind"`
}

// FilingsByMonth groups all filings of the given month by calendar day,
// keyed by YYYY-MM-DD. A filing whose deadline and review date both fall in
// the month appears under both days. Completed filings are included; the
// calendar view shows everything.
func FilingsByMonth(s *FilingService, year int, month time.Month) (map[string][]CalendarEntry, error) {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	filings, err := s.GetAll(true, 0, 0)
	if err != nil {
		return nil, err
	}

	inMonth := func(d time.Time) bool {
		return !d.Before(firstDay) && !d.After(lastDay)
	}

	byDate := make(map[string][]CalendarEntry)
	for _, filing := range filings {
		if deadline, err := filing.DeadlineDate(); err == nil && inMonth(deadline) {
			key := FormatDate(deadline)
			byDate[key] = append(byDate[key], CalendarEntry{Filing: filing, Kind: CalendarKindDeadline})
		}
		if review, err := filing.ReviewDateTime(); err == nil && inMonth(review) {
			key := FormatDate(review)
			byDate[key] = append(byDate[key], CalendarEntry{Filing: filing, Kind: CalendarKindReview})
		}
	}

	return byDate, nil
}

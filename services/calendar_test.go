package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilingsByMonth(t *testing.T) {
	svc := newTestService()

	// Deadline and review both in March
	svc.Add("MAR-BOTH", "2025-03-10", "")
	// Deadline in March, review rolls back into February
	svc.Add("MAR-EDGE", "2025-03-01", "")
	// Entirely outside March
	svc.Add("JUNE", "2025-06-15", "")

	march, err := FilingsByMonth(svc, 2025, time.March)
	assert.NoError(t, err)

	assert.Len(t, march["2025-03-10"], 1)
	assert.Equal(t, CalendarKindDeadline, march["2025-03-10"][0].Kind)
	assert.Len(t, march["2025-03-08"], 1)
	assert.Equal(t, CalendarKindReview, march["2025-03-08"][0].Kind)
	assert.Equal(t, "MAR-BOTH", march["2025-03-08"][0].Filing.CaseNumber)

	assert.Len(t, march["2025-03-01"], 1)
	assert.NotContains(t, march, "2025-02-27")

	february, err := FilingsByMonth(svc, 2025, time.February)
	assert.NoError(t, err)
	assert.Len(t, february["2025-02-27"], 1)
	assert.Equal(t, CalendarKindReview, february["2025-02-27"][0].Kind)

	june, err := FilingsByMonth(svc, 2025, time.June)
	assert.NoError(t, err)
	assert.Len(t, june, 2) // deadline and review day of the June filing
}

func TestFilingsByMonth_IncludesCompleted(t *testing.T) {
	svc := newTestService()

	filing, _ := svc.Add("DONE", "2025-04-20", "")
	svc.Update(filing.ID, FilingUpdate{Completed: boolPtr(true)})

	april, err := FilingsByMonth(svc, 2025, time.April)
	assert.NoError(t, err)
	assert.Len(t, april["2025-04-20"], 1)
	assert.Len(t, april["2025-04-18"], 1)
}

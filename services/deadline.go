package services

import "time"

// ReviewLeadDays is how many calendar days before the filing deadline the
// internal review with the lead attorney happens.
const ReviewLeadDays = 2

// ReviewDateFor computes the internal review date from a filing deadline.
// Calendar subtraction rolls over month and year boundaries.
func ReviewDateFor(filingDeadline time.Time) time.Time {
	return filingDeadline.AddDate(0, 0, -ReviewLeadDays)
}

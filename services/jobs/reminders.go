package jobs

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"filing_tracker_go/models"
	"filing_tracker_go/services"

	"github.com/robfig/cron/v3"
)

// Reminder kinds dispatched to the notifier.
const (
	ReminderKindDeadline = "deadline"
	ReminderKindReview   = "review"
)

// tickSchedule is the coarse polling cadence; the daily guard makes the
// exact cadence irrelevant for correctness.
const tickSchedule = "@every 30s"

// ReminderRecord is one filing inside a reminder payload.
type ReminderRecord struct {
	CaseNumber    string `json:"case_number"`
	DaysRemaining int    `json:"days_remaining"`
}

// ReminderGroup is one notification payload: all filings sharing a relevant
// date of the same kind.
type ReminderGroup struct {
	Kind    string           `json:"kind"`
	Date    string           `json:"date"`
	Records []ReminderRecord `json:"records"`
}

// Scheduler runs the daily reminder check. It polls coarsely via cron and
// uses a last-checked-date marker to guarantee at most one check per local
// calendar day, even across sleep/resume.
type Scheduler struct {
	Filings   *services.FilingService
	Notifier  services.Notifier
	DaysAhead int

	hour   int
	minute int

	mu        sync.Mutex
	lastCheck string // YYYY-MM-DD of the last completed check
	cron      *cron.Cron
}

// NewScheduler validates the reminder configuration and builds a scheduler.
// notificationTime is HH:MM local time; daysAhead must be within 1-30.
func NewScheduler(filings *services.FilingService, notifier services.Notifier, notificationTime string, daysAhead int) (*Scheduler, error) {
	hour, minute, err := services.ParseClock(notificationTime)
	if err != nil {
		return nil, err
	}

	if daysAhead < 1 || daysAhead > 30 {
		return nil, fmt.Errorf("%w: look-ahead days must be within 1-30, got %d", services.ErrValidation, daysAhead)
	}

	return &Scheduler{
		Filings:   filings,
		Notifier:  notifier,
		DaysAhead: daysAhead,
		hour:      hour,
		minute:    minute,
	}, nil
}

// Start launches the background polling loop.
func (s *Scheduler) Start() error {
	c := cron.New()

	_, err := c.AddFunc(tickSchedule, func() {
		s.tick(time.Now())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder tick: %w", err)
	}

	c.Start()
	s.cron = c
	log.Printf("[CRON] Reminder scheduler started (daily at %02d:%02d, %d day look-ahead)", s.hour, s.minute, s.DaysAhead)
	return nil
}

// Stop halts the background polling loop.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunNow resets the last-checked marker and runs the check immediately,
// regardless of the configured time. Used for on-demand refresh.
func (s *Scheduler) RunNow() {
	s.mu.Lock()
	s.lastCheck = ""
	s.mu.Unlock()
	s.tick(timeAt(time.Now(), s.hour, s.minute))
}

// tick transitions Idle -> Checking when the configured time of day has
// passed and no check ran today yet.
func (s *Scheduler) tick(now time.Time) {
	if now.Before(timeAt(now, s.hour, s.minute)) {
		return
	}

	today := services.FormatDate(now)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastCheck == today {
		return
	}

	// The marker only advances after a completed cycle so a failed query
	// is retried on the next tick.
	if s.runCheck(now) {
		s.lastCheck = today
	}
}

func (s *Scheduler) runCheck(now time.Time) bool {
	filings, err := s.Filings.GetUpcoming(s.DaysAhead)
	if err != nil {
		log.Printf("[JOB] Reminder check failed: %v", err)
		return false
	}

	groups := BuildReminders(filings, now, s.DaysAhead)
	log.Printf("[JOB] Reminder check found %d filings in %d groups", len(filings), len(groups))

	for _, group := range groups {
		title, message := FormatReminder(group)
		if err := s.Notifier.Notify(title, message); err != nil {
			log.Printf("[JOB] Failed to deliver %s reminder for %s: %v", group.Kind, group.Date, err)
		}
	}

	return true
}

// BuildReminders groups non-completed filings by relevant date and kind.
// A filing whose deadline and review date both fall inside the window
// contributes to one group of each kind; within a group each case appears
// once. Groups come back ordered by date, deadline groups first per day.
func BuildReminders(filings []models.Filing, now time.Time, daysAhead int) []ReminderGroup {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, daysAhead)

	type groupKey struct {
		kind string
		date string
	}
	grouped := make(map[groupKey][]ReminderRecord)
	seen := make(map[groupKey]map[string]bool)

	include := func(kind string, date time.Time, caseNumber string) {
		if date.Before(today) || date.After(end) {
			return
		}
		key := groupKey{kind: kind, date: services.FormatDate(date)}
		if seen[key] == nil {
			seen[key] = make(map[string]bool)
		}
		if seen[key][caseNumber] {
			return
		}
		seen[key][caseNumber] = true
		grouped[key] = append(grouped[key], ReminderRecord{
			CaseNumber:    caseNumber,
			DaysRemaining: daysBetween(today, date),
		})
	}

	for _, filing := range filings {
		if filing.Completed {
			continue
		}

		if deadline, err := filing.DeadlineDate(); err == nil {
			include(ReminderKindDeadline, dateIn(deadline, now.Location()), filing.CaseNumber)
		} else {
			log.Printf("[JOB] Skipping malformed deadline for case %s: %v", filing.CaseNumber, err)
		}

		if review, err := filing.ReviewDateTime(); err == nil {
			include(ReminderKindReview, dateIn(review, now.Location()), filing.CaseNumber)
		} else {
			log.Printf("[JOB] Skipping malformed review date for case %s: %v", filing.CaseNumber, err)
		}
	}

	groups := make([]ReminderGroup, 0, len(grouped))
	for key, records := range grouped {
		groups = append(groups, ReminderGroup{Kind: key.kind, Date: key.date, Records: records})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Date != groups[j].Date {
			return groups[i].Date < groups[j].Date
		}
		return groups[i].Kind < groups[j].Kind
	})

	return groups
}

// FormatReminder renders the human-readable title and message for a group.
// Display strings live here, at the notification boundary.
func FormatReminder(group ReminderGroup) (title, message string) {
	switch group.Kind {
	case ReminderKindReview:
		title = "Review Date Reminder"
	default:
		title = "Filing Deadline Reminder"
	}

	noun := "filing deadline"
	if group.Kind == ReminderKindReview {
		noun = "review date"
	}

	if len(group.Records) == 1 {
		record := group.Records[0]
		switch record.DaysRemaining {
		case 0:
			message = fmt.Sprintf("The %s for case '%s' is today!", noun, record.CaseNumber)
		case 1:
			message = fmt.Sprintf("1 day left until the %s for case '%s'!", noun, record.CaseNumber)
		default:
			message = fmt.Sprintf("%d days left until the %s for case '%s'!", record.DaysRemaining, noun, record.CaseNumber)
		}
		return title, message
	}

	title = fmt.Sprintf("%s (%d cases)", title, len(group.Records))

	caseNumbers := make([]string, len(group.Records))
	for i, record := range group.Records {
		caseNumbers[i] = record.CaseNumber
	}

	remaining := group.Records[0].DaysRemaining
	if remaining == 0 {
		message = fmt.Sprintf("The %s for %d cases is today (%s)!", noun, len(group.Records), group.Date)
	} else {
		message = fmt.Sprintf("%d days left until the %s on %s (%d cases).", remaining, noun, group.Date, len(group.Records))
	}
	message += "\nCases: " + strings.Join(caseNumbers, ", ")

	return title, message
}

// timeAt returns the given day's wall clock at hour:minute.
func timeAt(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// dateIn rebuilds a parsed UTC date in the scheduler's location so day
// arithmetic against local midnight stays exact.
func dateIn(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// daysBetween counts calendar days from a to b. Rounding keeps the count
// exact across DST transitions where a "day" is not 24 hours.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

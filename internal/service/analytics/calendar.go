package analytics

import (
	"time"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// LocalDate formats t as a calendar date in loc.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.DateLayout)
}

// previousDay steps one calendar day back. AddDate handles DST correctly,
// Add(-24h) does not.
func previousDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

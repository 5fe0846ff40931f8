package analytics

import (
	"time"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// Streak counts consecutive calendar days, ending today, that have at least
// one mood entry. Calendar days are taken in today's location. Several
// entries on the same day count once. A day without entries ends the walk, so
// no entry today means a streak of 0.
func Streak(entries []domain.MoodEntry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	loc := today.Location()
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[LocalDate(e.Timestamp, loc)] = struct{}{}
	}

	streak := 0
	// Walk at noon so a DST shift never lands on the neighbouring date.
	expected := DayStart(today, loc).Add(12 * time.Hour)
	for {
		if _, ok := days[expected.Format(domain.DateLayout)]; !ok {
			break
		}
		streak++
		expected = previousDay(expected)
	}
	return streak
}

// WeeklyActivity counts completions strictly inside the trailing 7×24h window
// ending at now.
func WeeklyActivity(completions []domain.ExerciseCompletion, now time.Time) int {
	since := now.Add(-7 * 24 * time.Hour)

	count := 0
	for _, c := range completions {
		if c.Timestamp.After(since) {
			count++
		}
	}
	return count
}

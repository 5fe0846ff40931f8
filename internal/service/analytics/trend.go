package analytics

import (
	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

const (
	trendWindow    = 7
	recentLogLimit = 10
	defaultScore   = 3
)

// MoodScore maps a mood type to its chart ordinal. Unknown types score 3.
func MoodScore(t domain.MoodType) int {
	switch t {
	case domain.MoodHappy:
		return 5
	case domain.MoodNeutral:
		return 4
	case domain.MoodSad:
		return 3
	case domain.MoodVerySad:
		return 2
	case domain.MoodAngry:
		return 1
	}
	return defaultScore
}

// MoodTrend returns (date, score) points for the last 7 entries in insertion
// order.
func MoodTrend(entries []domain.MoodEntry) []domain.TrendPoint {
	window := lastN(entries, trendWindow)

	points := make([]domain.TrendPoint, 0, len(window))
	for _, e := range window {
		label := e.Date
		if label == "" {
			label = e.Timestamp.Format(domain.DateLayout)
		}
		points = append(points, domain.TrendPoint{Label: label, Value: MoodScore(e.Type)})
	}
	return points
}

// RecentMoodLogs returns the last 10 entries, newest first.
func RecentMoodLogs(entries []domain.MoodEntry) []domain.MoodEntry {
	window := lastN(entries, recentLogLimit)

	out := make([]domain.MoodEntry, len(window))
	for i, e := range window {
		out[len(window)-1-i] = e
	}
	return out
}

func lastN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[len(items)-n:]
	}
	return items
}

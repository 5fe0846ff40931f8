// Package analytics computes every derived value shown on the dashboard and
// the mood tracker. All functions are pure: inputs are never modified and the
// clock is always an explicit argument.
package analytics

import (
	"time"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// Snapshot is one consistent read of the persisted collections.
type Snapshot struct {
	Moods     []domain.MoodEntry
	Exercises []domain.ExerciseCompletion
	Chats     []domain.ChatMessage
}

// BuildDashboard computes the home screen. now must already be in the user's
// location; calendar days and hour-of-day rules are taken from it.
func BuildDashboard(snap Snapshot, name string, now time.Time) domain.Dashboard {
	stat, icon := MoodStat(snap.Moods, now)
	streak := Streak(snap.Moods, now)
	weekly := WeeklyActivity(snap.Exercises, now)

	return domain.Dashboard{
		Greeting:       Greeting(snap.Moods, name, now),
		MoodStat:       stat,
		MoodIcon:       icon,
		Streak:         streak,
		StreakLabel:    StreakLabel(streak),
		WeeklyActivity: weekly,
		ActivityLabel:  ActivityLabel(weekly),
		Insight:        Insight(snap.Moods, now),
		RecentActivity: RecentActivity(snap.Moods, snap.Exercises, snap.Chats, now),
		Trend:          MoodTrend(snap.Moods),
	}
}

// BuildMoodHistory computes the mood tracker chart and log list.
func BuildMoodHistory(moods []domain.MoodEntry) domain.MoodHistory {
	return domain.MoodHistory{
		Trend:  MoodTrend(moods),
		Recent: RecentMoodLogs(moods),
	}
}

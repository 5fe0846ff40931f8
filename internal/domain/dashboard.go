package domain

import "time"

// ActivityKind identifies the source collection of an ActivityItem.
type ActivityKind string

const (
	ActivityMood     ActivityKind = "mood"
	ActivityExercise ActivityKind = "exercise"
	ActivityChat     ActivityKind = "chat"
)

// ActivityItem is one row of the recent-activity feed.
type ActivityItem struct {
	Kind        ActivityKind `json:"kind"`
	Icon        string       `json:"icon"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	Age         string       `json:"age"`
}

// TrendPoint is one point of the mood chart.
type TrendPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Dashboard holds every value the home screen renders.
type Dashboard struct {
	Greeting       string         `json:"greeting"`
	MoodStat       string         `json:"moodStat"`
	MoodIcon       string         `json:"moodIcon"`
	Streak         int            `json:"streak"`
	StreakLabel    string         `json:"streakLabel"`
	WeeklyActivity int            `json:"weeklyActivity"`
	ActivityLabel  string         `json:"activityLabel"`
	Insight        string         `json:"insight"`
	RecentActivity []ActivityItem `json:"recentActivity"`
	Trend          []TrendPoint   `json:"trend"`
}

// MoodHistory backs the mood tracker screen: the chart and the latest logs.
type MoodHistory struct {
	Trend  []TrendPoint `json:"trend"`
	Recent []MoodEntry  `json:"recent"`
}

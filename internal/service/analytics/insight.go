package analytics

import (
	"fmt"
	"time"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

const (
	insightStartTracking = "Start tracking your mood to get personalized insights!"
	insightHappy         = "Great job! You've been feeling happy frequently lately. Keep doing what makes you feel good!"
	insightDown          = "I notice you've been feeling down lately. Remember to be kind to yourself and consider trying some breathing exercises or talking to someone you trust."
	insightAngry         = "I see some frustration in your recent moods. Maybe try some physical activity or meditation to help manage these feelings."
	insightBalanced      = "You've been feeling quite balanced lately. That's good! Maybe try something new to add some excitement to your days."
	insightMixed         = "Your moods show a healthy mix of feelings. This is normal and shows emotional awareness. Keep tracking to understand your patterns better!"
	insightSleep         = " Remember to get good sleep for better mental health!"

	insightWindow = 7
	happyMinimum  = 3
)

// Insight picks a supportive message from the type counts of the last 7 mood
// entries. The first matching rule wins. Late at night a sleep reminder is
// appended. The hour is read from now as given.
func Insight(entries []domain.MoodEntry, now time.Time) string {
	if len(entries) == 0 {
		return insightStartTracking
	}

	counts := make(map[domain.MoodType]int)
	for _, e := range lastN(entries, insightWindow) {
		counts[e.Type]++
	}

	var insight string
	switch {
	case counts[domain.MoodHappy] >= happyMinimum:
		insight = insightHappy
	case counts[domain.MoodSad] > 0 || counts[domain.MoodVerySad] > 0:
		insight = insightDown
	case counts[domain.MoodAngry] > 0:
		insight = insightAngry
	case counts[domain.MoodNeutral] > 0 && len(counts) == 1:
		insight = insightBalanced
	default:
		insight = insightMixed
	}

	if h := now.Hour(); h >= 22 || h <= 6 {
		insight += insightSleep
	}
	return insight
}

// Greeting builds the time-of-day greeting, mentioning today's mood when one
// has been logged.
func Greeting(entries []domain.MoodEntry, name string, now time.Time) string {
	var salutation string
	switch h := now.Hour(); {
	case h < 12:
		salutation = "Good morning"
	case h < 17:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}

	if mood, ok := TodayMood(entries, now); ok {
		return fmt.Sprintf("%s, %s! %s You're feeling %s today.",
			salutation, name, mood.Type.Emoji(), mood.Type.Label())
	}
	return fmt.Sprintf("%s, %s! How are you feeling today?", salutation, name)
}

// TodayMood returns the first entry, in insertion order, logged on now's
// calendar day in now's location.
func TodayMood(entries []domain.MoodEntry, now time.Time) (domain.MoodEntry, bool) {
	today := LocalDate(now, now.Location())
	for _, e := range entries {
		if LocalDate(e.Timestamp, now.Location()) == today {
			return e, true
		}
	}
	return domain.MoodEntry{}, false
}

// MoodStat returns the dashboard mood card text and icon.
func MoodStat(entries []domain.MoodEntry, now time.Time) (stat, icon string) {
	mood, ok := TodayMood(entries, now)
	if !ok {
		return "Not logged yet", domain.MoodHappy.Emoji()
	}
	return mood.Emoji + " " + mood.Type.Label(), mood.Emoji
}

// StreakLabel renders a streak as "1 day" or "N days".
func StreakLabel(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// ActivityLabel renders the weekly exercise count.
func ActivityLabel(n int) string {
	return fmt.Sprintf("%d this week", n)
}

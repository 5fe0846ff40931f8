package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

const (
	feedLimit        = 5
	feedChatWindow   = 5
	chatPreviewRunes = 30

	exerciseIcon = "🧘"
	chatIcon     = "💬"
)

// RecentActivity merges moods, exercises and the last 5 chat messages into a
// feed sorted newest first and cut to 5 items. Items with equal timestamps
// keep their merge order: moods, then exercises, then chats.
func RecentActivity(
	moods []domain.MoodEntry,
	exercises []domain.ExerciseCompletion,
	chats []domain.ChatMessage,
	now time.Time,
) []domain.ActivityItem {
	chats = lastN(chats, feedChatWindow)

	items := make([]domain.ActivityItem, 0, len(moods)+len(exercises)+len(chats))
	for _, m := range moods {
		icon := m.Emoji
		if icon == "" {
			icon = m.Type.Emoji()
		}
		items = append(items, domain.ActivityItem{
			Kind:        domain.ActivityMood,
			Icon:        icon,
			Title:       "Mood logged",
			Description: "Feeling " + m.Type.Label(),
			Timestamp:   m.Timestamp,
		})
	}
	for _, e := range exercises {
		items = append(items, domain.ActivityItem{
			Kind:        domain.ActivityExercise,
			Icon:        exerciseIcon,
			Title:       "Exercise completed",
			Description: e.Name,
			Timestamp:   e.Timestamp,
		})
	}
	for _, c := range chats {
		items = append(items, domain.ActivityItem{
			Kind:        domain.ActivityChat,
			Icon:        chatIcon,
			Title:       "Chat with AI",
			Description: preview(c.Content, chatPreviewRunes),
			Timestamp:   c.Timestamp,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > feedLimit {
		items = items[:feedLimit]
	}

	for i := range items {
		items[i].Age = TimeAgo(now.Sub(items[i].Timestamp))
	}
	return items
}

// TimeAgo renders an elapsed duration as a short relative label. Elapsed
// seconds are floored; negative durations read as "Just now".
func TimeAgo(elapsed time.Duration) string {
	secs := int64(elapsed / time.Second)
	switch {
	case secs < 60:
		return "Just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

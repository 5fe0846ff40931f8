package domain

import (
	"strings"
	"time"
)

// Layouts of the denormalised date and time strings stored on a MoodEntry.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// MaxChatMessages is how many user chat lines are retained; older ones are dropped.
const MaxChatMessages = 50

// MoodType is the user's self-reported emotional state.
type MoodType string

const (
	MoodHappy   MoodType = "happy"
	MoodNeutral MoodType = "neutral"
	MoodSad     MoodType = "sad"
	MoodVerySad MoodType = "very-sad"
	MoodAngry   MoodType = "angry"
)

func (m MoodType) String() string { return string(m) }

func (m MoodType) IsValid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad, MoodVerySad, MoodAngry:
		return true
	}
	return false
}

// Label is the human form of the type: the first hyphen becomes a space.
func (m MoodType) Label() string {
	return strings.Replace(string(m), "-", " ", 1)
}

// Emoji returns the default emoji for the mood, or "" for unknown types.
func (m MoodType) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😢"
	case MoodVerySad:
		return "😭"
	case MoodAngry:
		return "😠"
	}
	return ""
}

// MoodEntry is one logged mood. Entries are immutable once stored.
type MoodEntry struct {
	Type      MoodType  `json:"type"`
	Emoji     string    `json:"emoji"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
}

// ExerciseCompletion records a finished guided exercise.
type ExerciseCompletion struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessage is a line the user sent to the companion. Replies are not stored.
type ChatMessage struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

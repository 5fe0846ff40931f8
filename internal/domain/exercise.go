package domain

import "time"

// Exercise is a guided self-care activity from the fixed catalog.
type Exercise struct {
	Key          string        `json:"key"`
	Title        string        `json:"title"`
	Instructions string        `json:"instructions"`
	Duration     time.Duration `json:"duration"`
}

var exercises = []Exercise{
	{
		Key:          "breathing",
		Title:        "Breathing Exercise",
		Instructions: "Find a comfortable position. We'll practice deep breathing for 2 minutes. Breathe in slowly for 4 counts, hold for 4, and exhale for 6 counts.",
		Duration:     2 * time.Minute,
	},
	{
		Key:          "meditation",
		Title:        "Guided Meditation",
		Instructions: "Close your eyes and focus on your breath. Let thoughts come and go without judgment. Notice the sensations in your body.",
		Duration:     5 * time.Minute,
	},
	{
		Key:          "journaling",
		Title:        "Journaling",
		Instructions: "Write about your thoughts and feelings. What's on your mind today? What are you grateful for? What challenges are you facing?",
	},
	{
		Key:          "creative",
		Title:        "Creative Expression",
		Instructions: "Express yourself through drawing, writing, or any creative outlet. There's no right or wrong way to create.",
	},
}

// Exercises returns a copy of the catalog in display order.
func Exercises() []Exercise {
	return append([]Exercise(nil), exercises...)
}

// ExerciseByKey looks up a catalog entry.
func ExerciseByKey(key string) (Exercise, bool) {
	for _, e := range exercises {
		if e.Key == key {
			return e, true
		}
	}
	return Exercise{}, false
}

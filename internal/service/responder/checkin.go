package responder

import (
	"strings"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

var positiveWords = []string{
	"good", "great", "happy", "awesome", "amazing", "wonderful", "fantastic",
	"love", "excited", "fun", "enjoyed", "beautiful", "perfect",
}

var negativeWords = []string{
	"bad", "sad", "angry", "upset", "frustrated", "disappointed", "stressed",
	"anxious", "worried", "tired", "exhausted", "overwhelmed", "difficult", "hard",
}

var checkinReplies = map[domain.Sentiment][]string{
	domain.SentimentPositive: {
		"That sounds amazing! I'm so happy for you. These positive moments are worth celebrating and remembering.",
		"Wonderful! It's great to hear about things that bring you joy. Would you like to save this as a positive memory?",
		"That's fantastic! Positive experiences like this can really boost our mood. Thanks for sharing this with me!",
		"I love hearing about your good experiences! These are the moments that make life special.",
	},
	domain.SentimentNegative: {
		"Thank you for sharing that with me. It sounds like you're going through a tough time. Remember, it's okay to feel this way, and you're not alone.",
		"I understand that must be difficult. Have you considered talking to someone you trust about this? I'm always here to listen.",
		"That sounds really challenging. Would you like to try a quick breathing exercise or meditation to help you feel more centered?",
		"I appreciate you opening up about this. Your feelings are completely valid. Would you like me to suggest some activities that might help?",
	},
	domain.SentimentNeutral: {
		"Thanks for sharing that with me. Every day has its ups and downs, and it's good to acknowledge both.",
		"I understand. Some days are just like that. Is there anything specific you'd like to focus on or work through?",
		"Thank you for being honest about how you're feeling. Would you like to explore ways to make today even better?",
		"I appreciate you taking the time to check in with yourself. How can I best support you right now?",
	},
}

// ClassifySentiment is positive when only positive words occur, negative
// when only negative words occur and neutral otherwise. Matching is a
// case-insensitive substring test.
func ClassifySentiment(text string) domain.Sentiment {
	lower := strings.ToLower(text)
	pos := containsAny(lower, positiveWords)
	neg := containsAny(lower, negativeWords)

	switch {
	case pos && !neg:
		return domain.SentimentPositive
	case neg && !pos:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// CheckinResponder answers the mood check-in question.
type CheckinResponder struct {
	picker Picker
}

func NewCheckinResponder(picker Picker) *CheckinResponder {
	return &CheckinResponder{picker: picker}
}

// Reply returns the detected sentiment and a reply drawn from its pool.
func (r *CheckinResponder) Reply(text string) (domain.Sentiment, string) {
	s := ClassifySentiment(text)
	return s, pick(r.picker, checkinReplies[s])
}

// Opener returns the check-in question shown after a mood is logged.
// Unknown moods get the neutral question.
func Opener(mood domain.MoodType) domain.CheckinPrompt {
	switch mood {
	case domain.MoodSad, domain.MoodVerySad, domain.MoodAngry:
		return domain.CheckinPrompt{
			Title:   "I'm here for you",
			Message: "I notice you're feeling down. Would you like to share what's been bothering you? I'm here to listen and help.",
		}
	case domain.MoodHappy:
		return domain.CheckinPrompt{
			Title:   "That's wonderful!",
			Message: "I'm glad you're feeling good today! What made your day so great? I'd love to hear about it.",
		}
	default:
		return domain.CheckinPrompt{
			Title:   "Checking in",
			Message: "How has your day been going so far? Anything interesting or challenging happen?",
		}
	}
}

package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// stubPicker always returns idx and records the pool sizes it was asked about.
type stubPicker struct {
	idx   int
	sizes []int
}

func (p *stubPicker) IntN(n int) int {
	p.sizes = append(p.sizes, n)
	return p.idx
}

func TestChatResponder_Keywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		topic   ChatTopic
	}{
		{"sad", "I feel sad today", TopicSadness},
		{"depressed", "kind of DEPRESSED", TopicSadness},
		{"anxious lower", "I'm anxious about tomorrow", TopicAnxiety},
		{"anxious upper", "ANXIOUS", TopicAnxiety},
		{"worry", "I worry a lot", TopicAnxiety},
		{"angry", "so Angry right now", TopicAnger},
		{"happy", "happy days", TopicJoy},
		{"good", "pretty good", TopicJoy},
		{"help", "can you help me", TopicHelp},
		{"sad beats happy", "happy but also sad", TopicSadness},
		{"anxious beats good", "good grief I'm anxious", TopicAnxiety},
		{"substring match", "goodness", TopicJoy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &stubPicker{}
			got := NewChatResponder(p).Reply(tt.message)

			assert.Equal(t, tt.topic, got.Topic)
			assert.Empty(t, p.sizes, "keyword replies are fixed, not drawn")
		})
	}
}

func TestChatResponder_AnxiousReplyIsFixed(t *testing.T) {
	t.Parallel()

	r := NewChatResponder(&stubPicker{})
	lower := r.Reply("anxious")
	upper := r.Reply("I AM ANXIOUS")

	assert.Equal(t, lower, upper)
	assert.Contains(t, lower.Text, "breathe in for 4 counts")
}

func TestChatResponder_Fallback(t *testing.T) {
	t.Parallel()

	p := &stubPicker{idx: 9}
	got := NewChatResponder(p).Reply("The weather is odd")

	assert.Equal(t, TopicGeneral, got.Topic)
	assert.Equal(t, generalReplies[9], got.Text)
	assert.Equal(t, []int{10}, p.sizes, "draws from a pool of 10")
}

func TestClassifySentiment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want domain.Sentiment
	}{
		{"I had a great and wonderful day", domain.SentimentPositive},
		{"Everything was PERFECT", domain.SentimentPositive},
		{"good but tired", domain.SentimentNeutral},
		{"I'm exhausted and stressed", domain.SentimentNegative},
		{"it was a hard day", domain.SentimentNegative},
		{"went to the store", domain.SentimentNeutral},
		{"", domain.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifySentiment(tt.text))
		})
	}
}

func TestWordLists(t *testing.T) {
	t.Parallel()

	assert.Len(t, positiveWords, 13)
	assert.Len(t, negativeWords, 14)
	for s, pool := range checkinReplies {
		assert.Len(t, pool, 4, "pool %s", s)
	}
}

func TestCheckinResponder_DrawsFromMatchedPool(t *testing.T) {
	t.Parallel()

	p := &stubPicker{idx: 2}
	sentiment, reply := NewCheckinResponder(p).Reply("I had a great and wonderful day")

	require.Equal(t, domain.SentimentPositive, sentiment)
	assert.Equal(t, checkinReplies[domain.SentimentPositive][2], reply)
	assert.Equal(t, []int{4}, p.sizes)
}

func TestOpener(t *testing.T) {
	t.Parallel()

	for _, m := range []domain.MoodType{domain.MoodSad, domain.MoodVerySad, domain.MoodAngry} {
		assert.Equal(t, "I'm here for you", Opener(m).Title, "mood %s", m)
	}
	assert.Equal(t, "That's wonderful!", Opener(domain.MoodHappy).Title)
	assert.Equal(t, "Checking in", Opener(domain.MoodNeutral).Title)
	assert.Equal(t, "Checking in", Opener("confused").Title)
	assert.NotEmpty(t, Opener(domain.MoodHappy).Message)
}

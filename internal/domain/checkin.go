package domain

// CheckinState is the state of the mood check-in dialog.
type CheckinState string

const (
	CheckinIdle            CheckinState = "idle"
	CheckinAwaitingInput   CheckinState = "awaiting_input"
	CheckinThinking        CheckinState = "thinking"
	CheckinShowingResponse CheckinState = "showing_response"
)

func (s CheckinState) String() string { return string(s) }

// Sentiment is the coarse polarity of a check-in answer.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) String() string { return string(s) }

// CheckinPrompt is the opening question shown after a mood is logged.
type CheckinPrompt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Checkin is a point-in-time view of the check-in dialog.
type Checkin struct {
	State     CheckinState  `json:"state"`
	Prompt    CheckinPrompt `json:"prompt"`
	Reply     string        `json:"reply,omitempty"`
	Sentiment Sentiment     `json:"sentiment,omitempty"`
}

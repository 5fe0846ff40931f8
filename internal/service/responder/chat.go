package responder

import "strings"

// ChatTopic names the row of the chat table that produced a reply.
type ChatTopic string

const (
	TopicSadness ChatTopic = "sadness"
	TopicAnxiety ChatTopic = "anxiety"
	TopicAnger   ChatTopic = "anger"
	TopicJoy     ChatTopic = "joy"
	TopicHelp    ChatTopic = "help"
	TopicGeneral ChatTopic = "general"
)

// ChatReply is the companion's answer to one chat line.
type ChatReply struct {
	Topic ChatTopic `json:"topic"`
	Text  string    `json:"text"`
}

type chatRule struct {
	keywords []string
	topic    ChatTopic
	reply    string
}

// Order matters: "I'm not happy, I'm sad" is a sadness message.
var chatRules = []chatRule{
	{
		keywords: []string{"sad", "depressed"},
		topic:    TopicSadness,
		reply:    "I'm sorry to hear you're feeling this way. Remember that these feelings are temporary, and you're not alone. Would you like to try a mood-boosting activity?",
	},
	{
		keywords: []string{"anxious", "worry"},
		topic:    TopicAnxiety,
		reply:    "Anxiety can be really overwhelming. Let's try a simple breathing technique: breathe in for 4 counts, hold for 4, and exhale for 6. Would you like to try that with me?",
	},
	{
		keywords: []string{"angry"},
		topic:    TopicAnger,
		reply:    "It's okay to feel angry. Those emotions are valid. Sometimes physical activity or creative expression can help channel that energy. What usually helps you when you feel this way?",
	},
	{
		keywords: []string{"happy", "good"},
		topic:    TopicJoy,
		reply:    "That's wonderful to hear! It's great to focus on these positive moments. What's contributing to these good feelings?",
	},
	{
		keywords: []string{"help"},
		topic:    TopicHelp,
		reply:    "I'm here to help you. Whether you need someone to talk to, resources, or just a listening ear, I'm here for you. What kind of support would be most helpful right now?",
	},
}

var generalReplies = []string{
	"I understand how you're feeling. It's completely normal to have these emotions.",
	"Thank you for sharing that with me. Would you like to talk more about what's been on your mind?",
	"That sounds really challenging. Have you tried any relaxation techniques when you feel this way?",
	"I'm here to listen. Sometimes just talking about our feelings can help us process them better.",
	"It's brave of you to reach out. Remember, it's okay to not be okay sometimes.",
	"Have you considered talking to a trusted friend or family member about this?",
	"Let's focus on some positive things. What's something that made you smile recently?",
	"I appreciate you opening up. Would you like to try a quick breathing exercise together?",
	"Your feelings are valid. What do you think might help you feel better right now?",
	"It's great that you're taking steps to care for your mental health. That's really important.",
}

// ChatResponder answers freeform chat lines.
type ChatResponder struct {
	picker Picker
}

func NewChatResponder(picker Picker) *ChatResponder {
	return &ChatResponder{picker: picker}
}

// Reply classifies message by case-insensitive substring match. The first
// matching row wins; otherwise a general reply is drawn at random.
func (r *ChatResponder) Reply(message string) ChatReply {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		if containsAny(lower, rule.keywords) {
			return ChatReply{Topic: rule.topic, Text: rule.reply}
		}
	}
	return ChatReply{Topic: TopicGeneral, Text: pick(r.picker, generalReplies)}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

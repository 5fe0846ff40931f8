package wellness

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/responder"
)

// TrackChatMessage stores a user chat line without replying.
func (s *Service) TrackChatMessage(ctx context.Context, content string) (domain.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if err := validateText("message", content, maxMessageLen); err != nil {
		return domain.ChatMessage{}, err
	}

	msg, err := s.records.AppendChatMessage(ctx, content)
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("append chat message: %w", err)
	}
	return msg, nil
}

// SendChatMessage stores the user's line, waits the thinking delay and
// returns the companion's reply. Blank input is rejected before anything is
// stored.
func (s *Service) SendChatMessage(ctx context.Context, text string) (responder.ChatReply, error) {
	msg, err := s.TrackChatMessage(ctx, text)
	if err != nil {
		return responder.ChatReply{}, err
	}

	if err := s.think(ctx); err != nil {
		return responder.ChatReply{}, fmt.Errorf("wait for reply: %w", err)
	}

	reply := s.chat.Reply(msg.Content)
	s.metrics.ChatReplies.WithLabelValues(string(reply.Topic)).Inc()

	s.log.DebugContext(ctx, "chat reply", slog.String("topic", string(reply.Topic)))
	return reply, nil
}

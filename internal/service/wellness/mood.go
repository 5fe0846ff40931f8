package wellness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/analytics"
	"github.com/heartmarshall/moodmate-backend/internal/service/responder"
)

// LogMoodResult is the stored entry and the check-in dialog it opened.
type LogMoodResult struct {
	Entry   domain.MoodEntry `json:"entry"`
	Checkin domain.Checkin   `json:"checkin"`
}

// LogMood stores a mood entry and opens the check-in dialog for it.
func (s *Service) LogMood(ctx context.Context, input LogMoodInput) (LogMoodResult, error) {
	if err := input.Validate(); err != nil {
		return LogMoodResult{}, err
	}

	emoji := input.Emoji
	if emoji == "" {
		emoji = input.Type.Emoji()
	}

	entry, err := s.records.AppendMood(ctx, domain.MoodEntry{Type: input.Type, Emoji: emoji})
	if err != nil {
		return LogMoodResult{}, fmt.Errorf("append mood: %w", err)
	}

	s.dialog.Open(responder.Opener(entry.Type))
	s.metrics.MoodsLogged.WithLabelValues(entry.Type.String()).Inc()

	s.log.InfoContext(ctx, "mood logged",
		slog.String("type", entry.Type.String()),
		slog.String("date", entry.Date),
	)

	return LogMoodResult{Entry: entry, Checkin: s.dialog.Snapshot()}, nil
}

// GetMoodHistory returns the mood chart and the latest logs.
func (s *Service) GetMoodHistory(ctx context.Context) (domain.MoodHistory, error) {
	moods, err := s.records.LoadMoodEntries(ctx)
	if err != nil {
		return domain.MoodHistory{}, fmt.Errorf("load moods: %w", err)
	}
	return analytics.BuildMoodHistory(moods), nil
}

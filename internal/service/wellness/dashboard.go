package wellness

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/analytics"
)

// GetDashboard reads every collection once and computes the home screen.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	moods, err := s.records.LoadMoodEntries(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("load moods: %w", err)
	}
	exercises, err := s.records.LoadExerciseCompletions(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("load exercise completions: %w", err)
	}
	chats, err := s.records.LoadChatMessages(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("load chat messages: %w", err)
	}
	name, err := s.records.UserName(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("load user name: %w", err)
	}

	snap := analytics.Snapshot{Moods: moods, Exercises: exercises, Chats: chats}
	dashboard := analytics.BuildDashboard(snap, name, s.now())

	s.log.DebugContext(ctx, "dashboard loaded",
		slog.Int("moods", len(moods)),
		slog.Int("streak", dashboard.Streak),
		slog.Int("weekly_activity", dashboard.WeeklyActivity),
	)

	return dashboard, nil
}

// SetUserName changes the name used in the greeting.
func (s *Service) SetUserName(ctx context.Context, input SetUserNameInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	name := strings.TrimSpace(input.Name)
	if err := s.records.SetUserName(ctx, name); err != nil {
		return "", fmt.Errorf("set user name: %w", err)
	}
	return name, nil
}

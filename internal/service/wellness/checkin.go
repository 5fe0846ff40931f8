package wellness

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/responder"
)

// OpenCheckin opens the check-in dialog for the most recent mood. Without
// any mood the neutral question is asked.
func (s *Service) OpenCheckin(ctx context.Context) (domain.Checkin, error) {
	moods, err := s.records.LoadMoodEntries(ctx)
	if err != nil {
		return domain.Checkin{}, fmt.Errorf("load moods: %w", err)
	}

	mood := domain.MoodNeutral
	if len(moods) > 0 {
		mood = moods[len(moods)-1].Type
	}

	s.dialog.Open(responder.Opener(mood))
	return s.dialog.Snapshot(), nil
}

// SendMoodCheckinResponse answers the open check-in question and waits for
// the companion's reply. If ctx ends first the reply still lands in the
// dialog and can be read with CheckinStatus.
func (s *Service) SendMoodCheckinResponse(ctx context.Context, text string) (domain.Checkin, error) {
	if utf8.RuneCountInString(text) > maxResponseLen {
		return domain.Checkin{}, domain.NewValidationError("response", "too long")
	}

	done, err := s.dialog.Submit(text)
	if err != nil {
		return domain.Checkin{}, err
	}

	select {
	case <-done:
	case <-ctx.Done():
		return domain.Checkin{}, fmt.Errorf("wait for check-in reply: %w", ctx.Err())
	}

	snap := s.dialog.Snapshot()
	if snap.State != domain.CheckinShowingResponse {
		return snap, fmt.Errorf("check-in closed while thinking: %w", domain.ErrConflict)
	}

	s.metrics.CheckinReplies.WithLabelValues(snap.Sentiment.String()).Inc()
	s.log.InfoContext(ctx, "check-in answered", slog.String("sentiment", snap.Sentiment.String()))

	return snap, nil
}

// CloseCheckin hides the check-in dialog.
func (s *Service) CloseCheckin() domain.Checkin {
	s.dialog.Close()
	return s.dialog.Snapshot()
}

// CheckinStatus returns the current check-in dialog.
func (s *Service) CheckinStatus() domain.Checkin {
	return s.dialog.Snapshot()
}

// Package wellness is the application facade: it owns the check-in dialog,
// applies the companion's pacing delays and feeds the persisted collections
// into the analytics functions.
package wellness

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/responder"
)

// recordStore defines the persistence operations needed by the wellness service.
type recordStore interface {
	AppendMood(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error)
	AppendExerciseCompletion(ctx context.Context, name string) (domain.ExerciseCompletion, error)
	AppendChatMessage(ctx context.Context, content string) (domain.ChatMessage, error)
	LoadMoodEntries(ctx context.Context) ([]domain.MoodEntry, error)
	LoadExerciseCompletions(ctx context.Context) ([]domain.ExerciseCompletion, error)
	LoadChatMessages(ctx context.Context) ([]domain.ChatMessage, error)
	UserName(ctx context.Context) (string, error)
	SetUserName(ctx context.Context, name string) error
}

// Options tune the companion's behaviour.
type Options struct {
	// Location decides calendar days and hour-of-day rules. Defaults to time.Local.
	Location *time.Location
	// ThinkingDelay is the pause before chat and check-in replies.
	ThinkingDelay time.Duration
	// Picker draws fallback replies. Defaults to math/rand/v2.
	Picker responder.Picker
}

// Service implements the mood, exercise, chat and dashboard operations.
type Service struct {
	log     *slog.Logger
	records recordStore
	clock   clockwork.Clock
	metrics *Metrics

	loc   *time.Location
	delay time.Duration

	chat   *responder.ChatResponder
	dialog *responder.Dialog
}

// NewService creates a new wellness service instance.
func NewService(
	logger *slog.Logger,
	records recordStore,
	clock clockwork.Clock,
	metrics *Metrics,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Picker == nil {
		opts.Picker = responder.RandomPicker()
	}

	return &Service{
		log:     logger.With("service", "wellness"),
		records: records,
		clock:   clock,
		metrics: metrics,
		loc:     opts.Location,
		delay:   opts.ThinkingDelay,
		chat:    responder.NewChatResponder(opts.Picker),
		dialog:  responder.NewDialog(clock, opts.ThinkingDelay, responder.NewCheckinResponder(opts.Picker)),
	}
}

// now is the current instant in the user's location.
func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}

// think blocks for the thinking delay. The caller may give up early through ctx.
func (s *Service) think(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := s.clock.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

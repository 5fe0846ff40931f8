package wellness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// ListExercises returns the exercise catalog.
func (s *Service) ListExercises() []domain.Exercise {
	return domain.Exercises()
}

// ListSupportResources returns the static crisis and help resources.
func (s *Service) ListSupportResources() []domain.SupportResource {
	return domain.SupportResources()
}

// CompleteExercise records a completion of the catalog exercise key.
func (s *Service) CompleteExercise(ctx context.Context, key string) (domain.ExerciseCompletion, error) {
	ex, ok := domain.ExerciseByKey(key)
	if !ok {
		return domain.ExerciseCompletion{}, fmt.Errorf("exercise %q: %w", key, domain.ErrNotFound)
	}

	completion, err := s.records.AppendExerciseCompletion(ctx, ex.Title)
	if err != nil {
		return domain.ExerciseCompletion{}, fmt.Errorf("append exercise completion: %w", err)
	}

	s.metrics.ExercisesCompleted.WithLabelValues(ex.Key).Inc()
	s.log.InfoContext(ctx, "exercise completed", slog.String("exercise", ex.Key))

	return completion, nil
}

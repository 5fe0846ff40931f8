// Command export prints the stored mood history and the current dashboard as
// JSON on stdout. It reads the same configuration as the server and is meant
// for backups and debugging, not for use while the server writes.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/moodmate-backend/internal/app"
	"github.com/heartmarshall/moodmate-backend/internal/config"
	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/analytics"
	"github.com/heartmarshall/moodmate-backend/internal/service/records"
)

type export struct {
	ExportedAt time.Time                   `json:"exportedAt"`
	UserName   string                      `json:"userName"`
	Moods      []domain.MoodEntry          `json:"moods"`
	Exercises  []domain.ExerciseCompletion `json:"exercises"`
	Chats      []domain.ChatMessage        `json:"chats"`
	Dashboard  domain.Dashboard            `json:"dashboard"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	clock := clockwork.NewRealClock()

	storage, err := app.OpenStorage(ctx, cfg.Storage, clock)
	if err != nil {
		return err
	}
	defer storage.Close()

	loc := cfg.Companion.Location()
	store := records.New(logger, storage, clock, loc)

	var out export
	if out.Moods, err = store.LoadMoodEntries(ctx); err != nil {
		return err
	}
	if out.Exercises, err = store.LoadExerciseCompletions(ctx); err != nil {
		return err
	}
	if out.Chats, err = store.LoadChatMessages(ctx); err != nil {
		return err
	}
	if out.UserName, err = store.UserName(ctx); err != nil {
		return err
	}

	out.ExportedAt = clock.Now().In(loc)
	out.Dashboard = analytics.BuildDashboard(analytics.Snapshot{
		Moods:     out.Moods,
		Exercises: out.Exercises,
		Chats:     out.Chats,
	}, out.UserName, out.ExportedAt)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	logger.Info("export completed",
		slog.Int("moods", len(out.Moods)),
		slog.Int("exercises", len(out.Exercises)),
		slog.Int("chats", len(out.Chats)),
	)
	return nil
}

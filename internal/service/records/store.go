// Package records owns the persisted collections: mood entries, exercise
// completions, chat messages and the user's display name. Each collection is
// a JSON array under a fixed key and is rewritten in full on every append.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// Storage keys. They match the keys the browser front end has always used.
const (
	KeyMoodData           = "moodData"
	KeyCompletedExercises = "completedExercises"
	KeyChatMessages       = "chatMessages"
	KeyUserName           = "userName"
)

// DefaultUserName is used until the user sets a name.
const DefaultUserName = "there"

// ErrCorrupt is returned by appends when the stored collection cannot be
// decoded. The stored blob is left as it is.
var ErrCorrupt = errors.New("stored collection is unreadable")

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store provides typed access to the persisted collections.
type Store struct {
	kv    kvStore
	clock clockwork.Clock
	loc   *time.Location
	log   *slog.Logger

	// mu serialises read-modify-write appends.
	mu sync.Mutex
}

// New creates a Store. loc is the zone used for the date/time strings
// stamped on mood entries.
func New(log *slog.Logger, kv kvStore, clock clockwork.Clock, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		kv:    kv,
		clock: clock,
		loc:   loc,
		log:   log.With("service", "records"),
	}
}

// ---------------------------------------------------------------------------
// Appends
// ---------------------------------------------------------------------------

// AppendMood validates and stores a mood entry. A zero timestamp is replaced
// by the current instant; empty date/time strings are derived from it.
func (s *Store) AppendMood(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	if strings.TrimSpace(string(entry.Type)) == "" {
		return domain.MoodEntry{}, domain.NewValidationError("type", "required")
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.clock.Now()
	}
	local := entry.Timestamp.In(s.loc)
	if entry.Date == "" {
		entry.Date = local.Format(domain.DateLayout)
	}
	if entry.Time == "" {
		entry.Time = local.Format(domain.ClockLayout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := load[domain.MoodEntry](ctx, s, KeyMoodData)
	if err != nil {
		return domain.MoodEntry{}, err
	}
	entries = append(entries, entry)

	if err := save(ctx, s, KeyMoodData, entries); err != nil {
		return domain.MoodEntry{}, err
	}

	s.log.DebugContext(ctx, "mood appended",
		slog.String("type", entry.Type.String()),
		slog.Int("total", len(entries)),
	)
	return entry, nil
}

// AppendExerciseCompletion records that the named exercise was completed now.
func (s *Store) AppendExerciseCompletion(ctx context.Context, name string) (domain.ExerciseCompletion, error) {
	if strings.TrimSpace(name) == "" {
		return domain.ExerciseCompletion{}, domain.NewValidationError("name", "required")
	}

	completion := domain.ExerciseCompletion{Name: name, Timestamp: s.clock.Now()}

	s.mu.Lock()
	defer s.mu.Unlock()

	completions, err := load[domain.ExerciseCompletion](ctx, s, KeyCompletedExercises)
	if err != nil {
		return domain.ExerciseCompletion{}, err
	}
	completions = append(completions, completion)

	if err := save(ctx, s, KeyCompletedExercises, completions); err != nil {
		return domain.ExerciseCompletion{}, err
	}

	return completion, nil
}

// AppendChatMessage stores a user chat line and keeps only the newest
// domain.MaxChatMessages lines.
func (s *Store) AppendChatMessage(ctx context.Context, content string) (domain.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return domain.ChatMessage{}, domain.NewValidationError("content", "required")
	}

	msg := domain.ChatMessage{Content: content, Timestamp: s.clock.Now()}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := load[domain.ChatMessage](ctx, s, KeyChatMessages)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	messages = append(messages, msg)
	if over := len(messages) - domain.MaxChatMessages; over > 0 {
		messages = append([]domain.ChatMessage(nil), messages[over:]...)
	}

	if err := save(ctx, s, KeyChatMessages, messages); err != nil {
		return domain.ChatMessage{}, err
	}

	return msg, nil
}

// ---------------------------------------------------------------------------
// Loads
// ---------------------------------------------------------------------------

// LoadMoodEntries returns all mood entries in insertion order.
func (s *Store) LoadMoodEntries(ctx context.Context) ([]domain.MoodEntry, error) {
	return loadLenient[domain.MoodEntry](ctx, s, KeyMoodData)
}

// LoadExerciseCompletions returns all completions in insertion order.
func (s *Store) LoadExerciseCompletions(ctx context.Context) ([]domain.ExerciseCompletion, error) {
	return loadLenient[domain.ExerciseCompletion](ctx, s, KeyCompletedExercises)
}

// LoadChatMessages returns the retained chat lines in insertion order.
func (s *Store) LoadChatMessages(ctx context.Context) ([]domain.ChatMessage, error) {
	return loadLenient[domain.ChatMessage](ctx, s, KeyChatMessages)
}

// ---------------------------------------------------------------------------
// User name
// ---------------------------------------------------------------------------

// UserName returns the stored display name, or DefaultUserName.
func (s *Store) UserName(ctx context.Context) (string, error) {
	name, ok, err := s.kv.Get(ctx, KeyUserName)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", KeyUserName, err)
	}
	if !ok || strings.TrimSpace(name) == "" {
		return DefaultUserName, nil
	}
	return name, nil
}

// SetUserName stores the display name as a plain string.
func (s *Store) SetUserName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if err := s.kv.Set(ctx, KeyUserName, name); err != nil {
		return fmt.Errorf("set %s: %w", KeyUserName, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// load decodes the collection under key. An absent key is an empty
// collection. An undecodable blob yields ErrCorrupt so that appends never
// overwrite it.
func load[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", key, ErrCorrupt, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// loadLenient is load for read paths: an undecodable blob is logged and
// read as empty.
func loadLenient[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	items, err := load[T](ctx, s, key)
	if errors.Is(err, ErrCorrupt) {
		s.log.WarnContext(ctx, "unreadable collection treated as empty",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return []T{}, nil
	}
	return items, err
}

func save[T any](ctx context.Context, s *Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

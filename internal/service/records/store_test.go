package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moodmate-backend/internal/adapter/memory"
	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *memory.Store, *clockwork.FakeClock) {
	t.Helper()
	kv := memory.NewStore()
	clock := clockwork.NewFakeClockAt(testNow)
	return New(slog.Default(), kv, clock, time.UTC), kv, clock
}

func TestStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, _ := newTestStore(t)

	moods, err := s.LoadMoodEntries(ctx)
	require.NoError(t, err)
	assert.NotNil(t, moods)
	assert.Empty(t, moods)

	exercises, err := s.LoadExerciseCompletions(ctx)
	require.NoError(t, err)
	assert.Empty(t, exercises)

	chats, err := s.LoadChatMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func TestStore_AppendMood_FillsTimestampAndStrings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, kv, _ := newTestStore(t)

	got, err := s.AppendMood(ctx, domain.MoodEntry{Type: domain.MoodHappy, Emoji: "😊"})
	require.NoError(t, err)

	assert.True(t, got.Timestamp.Equal(testNow))
	assert.Equal(t, "2026-03-14", got.Date)
	assert.Equal(t, "09:26", got.Time)

	raw, ok, err := kv.Get(ctx, KeyMoodData)
	require.NoError(t, err)
	require.True(t, ok)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "happy", stored[0]["type"])
	assert.Equal(t, "😊", stored[0]["emoji"])
	assert.Equal(t, "2026-03-14", stored[0]["date"])
	assert.Contains(t, stored[0], "timestamp")
}

func TestStore_AppendMood_KeepsExplicitTimestamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, _ := newTestStore(t)
	ts := testNow.AddDate(0, 0, -2)

	got, err := s.AppendMood(ctx, domain.MoodEntry{Type: domain.MoodSad, Timestamp: ts})
	require.NoError(t, err)
	assert.True(t, got.Timestamp.Equal(ts))
	assert.Equal(t, "2026-03-12", got.Date)
}

func TestStore_AppendMood_UsesLocation(t *testing.T) {
	t.Parallel()

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))
	s := New(slog.Default(), memory.NewStore(), clock, tokyo)

	got, err := s.AppendMood(context.Background(), domain.MoodEntry{Type: domain.MoodNeutral})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", got.Date)
	assert.Equal(t, "05:00", got.Time)
}

func TestStore_AppendMood_EmptyTypeRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, kv, _ := newTestStore(t)

	_, err := s.AppendMood(ctx, domain.MoodEntry{Emoji: "😊"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, ok, _ := kv.Get(ctx, KeyMoodData)
	assert.False(t, ok, "nothing should be persisted on validation failure")
}

func TestStore_AppendMood_PreservesOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, clock := newTestStore(t)

	types := []domain.MoodType{domain.MoodHappy, domain.MoodSad, domain.MoodAngry}
	for _, mt := range types {
		_, err := s.AppendMood(ctx, domain.MoodEntry{Type: mt})
		require.NoError(t, err)
		clock.Advance(time.Hour)
	}

	got, err := s.LoadMoodEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, mt := range types {
		assert.Equal(t, mt, got[i].Type)
	}
}

func TestStore_AppendRewritesWholeCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stored := map[string]string{}
	kv := &kvStoreMock{
		GetFunc: func(_ context.Context, key string) (string, bool, error) {
			v, ok := stored[key]
			return v, ok, nil
		},
		SetFunc: func(_ context.Context, key, value string) error {
			stored[key] = value
			return nil
		},
	}
	s := New(slog.Default(), kv, clockwork.NewFakeClockAt(testNow), time.UTC)

	_, err := s.AppendExerciseCompletion(ctx, "Breathing Exercise")
	require.NoError(t, err)
	_, err = s.AppendExerciseCompletion(ctx, "Journaling")
	require.NoError(t, err)

	sets := kv.SetCalls()
	require.Len(t, sets, 2)

	var last []domain.ExerciseCompletion
	require.NoError(t, json.Unmarshal([]byte(sets[1].Value), &last))
	require.Len(t, last, 2, "second write must contain the full sequence")
	assert.Equal(t, "Breathing Exercise", last[0].Name)
	assert.Equal(t, "Journaling", last[1].Name)
}

func TestStore_AppendExerciseCompletion_EmptyName(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t)

	_, err := s.AppendExerciseCompletion(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStore_AppendChatMessage_CapsAtFifty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _, clock := newTestStore(t)

	for i := 0; i < 55; i++ {
		_, err := s.AppendChatMessage(ctx, fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	got, err := s.LoadChatMessages(ctx)
	require.NoError(t, err)
	require.Len(t, got, domain.MaxChatMessages)
	for i, msg := range got {
		assert.Equal(t, fmt.Sprintf("message %d", i+5), msg.Content)
	}
}

func TestStore_AppendChatMessage_Empty(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t)

	_, err := s.AppendChatMessage(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStore_CorruptBlobTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, kv, _ := newTestStore(t)
	require.NoError(t, kv.Set(ctx, KeyMoodData, "{not json"))

	got, err := s.LoadMoodEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_AppendKeepsUnreadableBlob(t *testing.T) {
	t.Parallel()

	const blob = `[{"type":"sad","date":"2026-03-12"},{"type":"happy","date":"2026-03-13"},{"type":"angry","date":20260314}]`

	tests := []struct {
		name   string
		key    string
		append func(context.Context, *Store) error
	}{
		{
			name: "mood",
			key:  KeyMoodData,
			append: func(ctx context.Context, s *Store) error {
				_, err := s.AppendMood(ctx, domain.MoodEntry{Type: domain.MoodHappy})
				return err
			},
		},
		{
			name: "exercise",
			key:  KeyCompletedExercises,
			append: func(ctx context.Context, s *Store) error {
				_, err := s.AppendExerciseCompletion(ctx, "Breathing Exercise")
				return err
			},
		},
		{
			name: "chat",
			key:  KeyChatMessages,
			append: func(ctx context.Context, s *Store) error {
				_, err := s.AppendChatMessage(ctx, "hello")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s, kv, _ := newTestStore(t)
			require.NoError(t, kv.Set(ctx, tt.key, blob))

			err := tt.append(ctx, s)
			require.ErrorIs(t, err, ErrCorrupt)

			raw, ok, err := kv.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, blob, raw)
		})
	}
}

func TestStore_BackendErrorsPropagate(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	kv := &kvStoreMock{
		GetFunc: func(context.Context, string) (string, bool, error) { return "", false, boom },
		SetFunc: func(context.Context, string, string) error { return boom },
	}
	s := New(slog.Default(), kv, clockwork.NewFakeClockAt(testNow), time.UTC)

	_, err := s.LoadChatMessages(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = s.AppendMood(context.Background(), domain.MoodEntry{Type: domain.MoodHappy})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, kv.SetCalls(), "no write after a failed read")
}

func TestStore_UserName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, kv, _ := newTestStore(t)

	name, err := s.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserName, name)

	require.NoError(t, s.SetUserName(ctx, "  Jordan "))
	name, err = s.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", name)

	raw, _, _ := kv.Get(ctx, KeyUserName)
	assert.Equal(t, "Jordan", raw, "user name is stored as a plain string")

	assert.ErrorIs(t, s.SetUserName(ctx, " "), domain.ErrValidation)
}
